package fixture

import (
	"fmt"
	"reflect"
	"testing"
)

// Option 调整 fixture 的注册行为
type Option func(*settings)

type settings struct {
	name   string
	shared bool
}

// WithName 以名称区分同一类型下的多个 fixture
func WithName(name string) Option {
	return func(s *settings) { s.name = name }
}

// Shared 使 provider 只执行一次，之后所有解析复用同一实例
func Shared() Option {
	return func(s *settings) { s.shared = true }
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Provide 注册类型 T 的 provider 函数
// 同一 key（类型+名称）重复注册时报错。
func Provide[T any](s *Set, build func() (T, error), opts ...Option) error {
	if build == nil {
		return fmt.Errorf("fixture: provider function must not be nil")
	}
	var cfg settings
	for _, opt := range opts {
		opt(&cfg)
	}
	d := &definition{
		shared: cfg.shared,
		build: func() (any, error) {
			return build()
		},
	}
	return s.add(key{typ: typeOf[T](), name: cfg.name}, d)
}

// ProvideValue 注册固定值 fixture
func ProvideValue[T any](s *Set, value T, opts ...Option) error {
	return Provide(s, func() (T, error) { return value, nil }, opts...)
}

// Resolve 解析类型 T 的 fixture（默认名称）
func Resolve[T any](s *Set) (T, error) {
	return ResolveNamed[T](s, "")
}

// ResolveNamed 解析类型 T、指定名称的 fixture
func ResolveNamed[T any](s *Set, name string) (T, error) {
	var zero T
	k := key{typ: typeOf[T](), name: name}
	d, ok := s.lookup(k)
	if !ok {
		return zero, fmt.Errorf("fixture: %s 未注册", k)
	}
	val, err := d.resolve()
	if err != nil {
		return zero, fmt.Errorf("fixture: build %s: %w", k, err)
	}
	typed, ok := val.(T)
	if !ok {
		return zero, fmt.Errorf("fixture: %s provider returned %T", k, val)
	}
	return typed, nil
}

// Get 在测试体内解析 fixture，解析失败时终止当前测试
// name 为空表示默认名称。
func Get[T any](tb testing.TB, s *Set, name string) T {
	tb.Helper()
	val, err := ResolveNamed[T](s, name)
	if err != nil {
		tb.Fatal(err)
	}
	return val
}
