package conf

// Option 可区分“未设置”状态的配置值
// 命令行未提供的字符串选项保持未设置，而不是退化为空字符串
type Option[T any] struct {
	value T
	set   bool
}

// Some 创建已设置的 Option
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, set: true}
}

// None 创建未设置的 Option
func None[T any]() Option[T] {
	return Option[T]{}
}

// Get 返回值及其是否被设置
func (o Option[T]) Get() (T, bool) {
	return o.value, o.set
}

// IsSet 报告该选项是否被显式设置
func (o Option[T]) IsSet() bool {
	return o.set
}

// Value 返回值；未设置时返回零值
func (o Option[T]) Value() T {
	return o.value
}

// OrElse 返回值；未设置时返回 fallback
func (o Option[T]) OrElse(fallback T) T {
	if o.set {
		return o.value
	}
	return fallback
}
