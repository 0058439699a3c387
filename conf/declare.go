package conf

import (
	"flag"
	"strconv"
)

// 测试会话可识别的命令行选项名
const (
	FlagToolPath              = "tool-path"
	FlagLibraryPath           = "library-path"
	FlagFeatureSupport        = "feature-support"
	FlagFeatureHelperPath     = "feature-helper-path"
	FlagPeerAddressHelperPath = "peer-address-helper-path"
	FlagDefaultsFile          = "defaults-file"
	FlagSessionVerbose        = "session-verbose"
)

// Values 保存解析后的选项值（flag 的写入目标）
// Declare 返回的实例在 fs.Parse 之后交给 Registry.Populate
type Values struct {
	ToolPath              Option[string]
	LibraryPath           Option[string]
	HasOptionalFeature    bool
	FeatureHelperPath     Option[string]
	PeerAddressHelperPath Option[string]

	DefaultsFile   Option[string]
	SessionVerbose bool

	// featureSupportSet 记录 -feature-support 是否在命令行出现
	// 显式提供时（包括 =false）默认值文件不再覆盖
	featureSupportSet bool
}

// Declare 在给定解析器上注册全部已识别选项
// 只修改解析器的 schema，无任何 I/O；非法输入由 flag 包自身报告
func Declare(fs *flag.FlagSet) *Values {
	v := &Values{}
	fs.Var(&stringValue{opt: &v.ToolPath}, FlagToolPath,
		"path to the primary program under test")
	fs.Var(&stringValue{opt: &v.LibraryPath}, FlagLibraryPath,
		"path to the auxiliary library under test")
	fs.Var(&presenceValue{target: &v.HasOptionalFeature, seen: &v.featureSupportSet}, FlagFeatureSupport,
		"whether the optional feature is compiled into the program under test")
	fs.Var(&stringValue{opt: &v.FeatureHelperPath}, FlagFeatureHelperPath,
		"path to the helper used by optional-feature tests")
	fs.Var(&stringValue{opt: &v.PeerAddressHelperPath}, FlagPeerAddressHelperPath,
		"path to the peer-address helper program")
	fs.Var(&stringValue{opt: &v.DefaultsFile}, FlagDefaultsFile,
		"optional YAML file with defaults for unset options")
	fs.Var(&presenceValue{target: &v.SessionVerbose}, FlagSessionVerbose,
		"enable debug-level session diagnostics")
	return v
}

// stringValue 记录选项是否被显式提供的 flag.Value
// 区分“未提供”与“提供了空字符串”
type stringValue struct {
	opt *Option[string]
}

func (s *stringValue) Set(raw string) error {
	*s.opt = Some(raw)
	return nil
}

func (s *stringValue) String() string {
	if s == nil || s.opt == nil {
		return ""
	}
	return s.opt.Value()
}

// presenceValue 出现即为 true 的布尔 flag.Value
type presenceValue struct {
	target *bool
	seen   *bool
}

func (p *presenceValue) Set(raw string) error {
	parsed, err := strconv.ParseBool(raw)
	if err != nil {
		return err
	}
	*p.target = parsed
	if p.seen != nil {
		*p.seen = true
	}
	return nil
}

func (p *presenceValue) String() string {
	if p == nil || p.target == nil {
		return "false"
	}
	return strconv.FormatBool(*p.target)
}

// IsBoolFlag 使 flag 包接受不带参数的裸 -feature-support 形式
func (p *presenceValue) IsBoolFlag() bool { return true }
