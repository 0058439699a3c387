package fixture

import (
	"fmt"
	"reflect"
	"sync"
)

// key 唯一标识一个 fixture：类型 + 可选名称
type key struct {
	typ  reflect.Type
	name string
}

func (k key) String() string {
	if k.name == "" {
		return k.typ.String()
	}
	return fmt.Sprintf("%s (name=%s)", k.typ, k.name)
}

// definition 单个 fixture 的注册信息
type definition struct {
	build  func() (any, error)
	shared bool

	once     sync.Once
	instance any
	buildErr error
}

// resolve 执行 provider；shared 时只计算一次并复用结果
func (d *definition) resolve() (any, error) {
	if !d.shared {
		return d.build()
	}
	d.once.Do(func() {
		d.instance, d.buildErr = d.build()
	})
	return d.instance, d.buildErr
}

// Set fixture 容器：会话配置阶段集中注册 provider，测试执行阶段只读
type Set struct {
	mu          sync.RWMutex
	definitions map[key]*definition
}

// NewSet 创建空容器
func NewSet() *Set {
	return &Set{definitions: make(map[key]*definition)}
}

func (s *Set) add(k key, d *definition) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.definitions[k]; exists {
		return fmt.Errorf("fixture: %s 已注册", k)
	}
	s.definitions[k] = d
	return nil
}

func (s *Set) lookup(k key) (*definition, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.definitions[k]
	return d, ok
}

// Len 返回已注册 fixture 的数量
func (s *Set) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.definitions)
}
