package conf

import (
	"sync"
	"sync/atomic"
)

// RunConfiguration 一次测试会话解析出的全部配置
// Populate 之后在概念上不可变：除填充者外没有任何组件再写入
//
// peer-address helper 路径不作为导出字段暴露，
// 只能通过 Registry.PeerAddressHelperPath 访问器（或 fixture）读取。
type RunConfiguration struct {
	ToolPath           Option[string]
	LibraryPath        Option[string]
	HasOptionalFeature bool
	FeatureHelperPath  Option[string]

	peerAddressHelperPath Option[string]
}

// Registry 进程级配置注册表
// 生命周期：零值创建 → Populate 恰好一次 → 任意多次读取；无需 teardown，
// 快照随进程退出一起回收。
type Registry struct {
	once    sync.Once
	current atomic.Pointer[RunConfiguration]
}

// NewRegistry 创建未填充的注册表
func NewRegistry() *Registry {
	r := &Registry{}
	r.current.Store(&RunConfiguration{})
	return r
}

// Populate 将解析后的选项值写入注册表
// 按契约 runner 在测试执行前只调用一次；重复调用不修改已生效的快照，
// 始终返回当前有效配置。
func (r *Registry) Populate(values *Values) *RunConfiguration {
	r.once.Do(func() {
		r.current.Store(&RunConfiguration{
			ToolPath:              values.ToolPath,
			LibraryPath:           values.LibraryPath,
			HasOptionalFeature:    values.HasOptionalFeature,
			FeatureHelperPath:     values.FeatureHelperPath,
			peerAddressHelperPath: values.PeerAddressHelperPath,
		})
	})
	return r.Current()
}

// Current 返回当前快照；Populate 之前返回全部未设置的零值配置
func (r *Registry) Current() *RunConfiguration {
	if cfg := r.current.Load(); cfg != nil {
		return cfg
	}
	// 零值 Registry 也保持可读
	return &RunConfiguration{}
}

// PeerAddressHelperPath peer-address helper 路径的唯一读取入口
// 无转换、无副作用，一次运行内返回值恒定。
func (r *Registry) PeerAddressHelperPath() Option[string] {
	return r.Current().peerAddressHelperPath
}

// defaultRegistry 进程内的默认注册表实例
var defaultRegistry = NewRegistry()

// Default 返回进程级默认注册表
func Default() *Registry { return defaultRegistry }

// Populate 填充默认注册表
func Populate(values *Values) *RunConfiguration { return defaultRegistry.Populate(values) }

// Current 读取默认注册表的当前快照
func Current() *RunConfiguration { return defaultRegistry.Current() }

// PeerAddressHelperPath 读取默认注册表的 peer-address helper 路径
func PeerAddressHelperPath() Option[string] { return defaultRegistry.PeerAddressHelperPath() }
