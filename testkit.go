package testkit

import (
	"flag"
	"fmt"
	"os"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"

	"github.com/gocrud/testkit/conf"
	"github.com/gocrud/testkit/fixture"
	"github.com/gocrud/testkit/logging"
)

// PeerAddressHelperFixture peer-address helper 路径的 fixture 名称
// 测试体通过 fixture.Get[conf.Option[string]] 按此名称请求注入，
// 这是该路径在 conf 包之外唯一的读取方式。
const PeerAddressHelperFixture = "peer-address-helper-path"

// Session 一次测试会话装配完成后的全部进程级状态
type Session struct {
	// ID 本次会话的唯一标识，用于区分并行运行的各个测试进程
	ID string
	// Config 已填充的配置快照（可直接引用的四个字段在这里）
	Config *conf.RunConfiguration
	// Fixtures 测试体可解析的 fixture 容器
	Fixtures *fixture.Set
	// Logger 会话诊断日志
	Logger logging.Logger
}

// currentSession 由 Main 在测试运行前写入，测试体经 Current 读取
var currentSession atomic.Pointer[Session]

// Current 返回 Main 装配完成的会话；装配尚未发生时返回 nil
// 测试体由此取得 fixture 容器：
//
//	peer := fixture.Get[conf.Option[string]](t, testkit.Current().Fixtures, testkit.PeerAddressHelperFixture)
func Current() *Session {
	return currentSession.Load()
}

// Main 测试套件入口，在套件的 TestMain 中调用：
//
//	func TestMain(m *testing.M) {
//		os.Exit(testkit.Main(m))
//	}
//
// 按固定顺序执行：声明选项 → 解析命令行 → 装配会话 → 运行测试。
// 装配完成的会话在测试执行期间可经 Current 获取；
// 装配失败返回 2（不执行任何测试）。
func Main(m *testing.M) int {
	code, err := sessionMain(flag.CommandLine, os.Args[1:], conf.Default(), m.Run)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	return code
}

// sessionMain Main 的完整序列：声明 → 解析 → 装配 → 保留会话 → 运行
// 解析器、注册表与测试执行函数均由调用方传入
func sessionMain(fs *flag.FlagSet, args []string, registry *conf.Registry, runTests func() int) (int, error) {
	values := conf.Declare(fs)
	if err := fs.Parse(args); err != nil {
		return 2, err
	}

	session, err := ConfigureWith(values, registry)
	if err != nil {
		return 2, err
	}
	currentSession.Store(session)

	return runTests(), nil
}

// Configure 根据解析后的选项值装配会话，填充进程级默认注册表
func Configure(values *conf.Values) (*Session, error) {
	return ConfigureWith(values, conf.Default())
}

// ConfigureWith 在指定注册表上装配会话
// 依次：应用默认值文件 → 填充注册表 → 注册 fixture → 创建日志。
// 注册表的 Populate 首次调用生效，因此同一注册表重复装配
// 得到的仍是第一次的配置快照。
func ConfigureWith(values *conf.Values, registry *conf.Registry) (*Session, error) {
	if path, ok := values.DefaultsFile.Get(); ok {
		defaults, err := conf.LoadDefaults(path)
		if err != nil {
			return nil, err
		}
		values.ApplyDefaults(defaults)
	}

	cfg := registry.Populate(values)

	fixtures := fixture.NewSet()
	err := fixture.Provide(fixtures, func() (conf.Option[string], error) {
		return registry.PeerAddressHelperPath(), nil
	}, fixture.WithName(PeerAddressHelperFixture))
	if err != nil {
		return nil, err
	}

	logger := logging.NewSessionLogger(values.SessionVerbose)

	session := &Session{
		ID:       uuid.NewString(),
		Config:   cfg,
		Fixtures: fixtures,
		Logger:   logger,
	}

	logger.Debug("test session configured",
		logging.Field{Key: "session", Value: session.ID},
		logging.Field{Key: "tool", Value: cfg.ToolPath.OrElse("<unset>")},
		logging.Field{Key: "library", Value: cfg.LibraryPath.OrElse("<unset>")},
		logging.Field{Key: "feature-support", Value: cfg.HasOptionalFeature},
	)
	return session, nil
}
