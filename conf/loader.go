package conf

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults 选项默认值文件的内容，键与命令行选项同名
type Defaults struct {
	ToolPath              *string `yaml:"tool-path"`
	LibraryPath           *string `yaml:"library-path"`
	FeatureSupport        *bool   `yaml:"feature-support"`
	FeatureHelperPath     *string `yaml:"feature-helper-path"`
	PeerAddressHelperPath *string `yaml:"peer-address-helper-path"`
}

// LoadDefaults 读取 YAML 默认值文件
func LoadDefaults(path string) (*Defaults, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("conf: read defaults file: %w", err)
	}
	var d Defaults
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("conf: parse defaults file %s: %w", path, err)
	}
	return &d, nil
}

// ApplyDefaults 用默认值填充命令行未提供的选项，命令行始终优先
func (v *Values) ApplyDefaults(d *Defaults) {
	if d == nil {
		return
	}
	if !v.ToolPath.IsSet() && d.ToolPath != nil {
		v.ToolPath = Some(*d.ToolPath)
	}
	if !v.LibraryPath.IsSet() && d.LibraryPath != nil {
		v.LibraryPath = Some(*d.LibraryPath)
	}
	if !v.featureSupportSet && d.FeatureSupport != nil {
		v.HasOptionalFeature = *d.FeatureSupport
	}
	if !v.FeatureHelperPath.IsSet() && d.FeatureHelperPath != nil {
		v.FeatureHelperPath = Some(*d.FeatureHelperPath)
	}
	if !v.PeerAddressHelperPath.IsSet() && d.PeerAddressHelperPath != nil {
		v.PeerAddressHelperPath = Some(*d.PeerAddressHelperPath)
	}
}
