package log

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetForTest 다음 테스트가 Setup()을 다시 실행할 수 있도록 전역 상태를 초기화합니다.
func resetForTest() {
	setupOnce = sync.Once{}
	globalCloser = nil
	globalSetupErr = nil

	logrus.StandardLogger().ReplaceHooks(make(logrus.LevelHooks))
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
	logrus.SetReportCaller(false)
	logrus.SetFormatter(&logrus.TextFormatter{})
}

func TestSetup_Validation(t *testing.T) {
	tempFile := filepath.Join(t.TempDir(), "existing_file")
	require.NoError(t, os.WriteFile(tempFile, []byte("test"), 0644))

	tests := []struct {
		name        string
		opts        Options
		expectError string
	}{
		{
			name:        "Missing Name",
			opts:        Options{Dir: t.TempDir()},
			expectError: "애플리케이션 식별자(Name)가 설정되지 않았습니다",
		},
		{
			name:        "Dir Conflicts with Existing File",
			opts:        Options{Name: "catalog", Dir: tempFile},
			expectError: "이미 파일로 존재합니다",
		},
		{
			name:        "Negative MaxAge",
			opts:        Options{Name: "catalog", Dir: t.TempDir(), MaxAge: -1},
			expectError: "MaxAge",
		},
		{
			name:        "Negative MaxBackups",
			opts:        Options{Name: "catalog", Dir: t.TempDir(), MaxBackups: -1},
			expectError: "MaxBackups",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetForTest()
			defer resetForTest()

			_, err := Setup(tt.opts)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectError)
		})
	}
}

func TestSetup_WritesRoutedFiles(t *testing.T) {
	resetForTest()
	defer resetForTest()

	dir := t.TempDir()
	opts := NewProductionOptions("catalog")
	opts.Dir = dir
	opts.Level = TraceLevel

	c, err := Setup(opts)
	require.NoError(t, err)
	require.NotNil(t, c)

	WithComponent("test").Info("info-message")
	WithComponentAndFields("test", Fields{"key": "value"}).Error("error-message")
	WithComponent("test").Debug("debug-message")

	require.NoError(t, c.Close())

	mainLog, err := os.ReadFile(filepath.Join(dir, "catalog.log"))
	require.NoError(t, err)
	assert.Contains(t, string(mainLog), "info-message")
	assert.Contains(t, string(mainLog), "error-message")
	assert.NotContains(t, string(mainLog), "debug-message")
	assert.Contains(t, string(mainLog), "component=test")

	critical, err := os.ReadFile(filepath.Join(dir, "catalog.critical.log"))
	require.NoError(t, err)
	assert.Contains(t, string(critical), "error-message")
	assert.Contains(t, string(critical), "key=value")
	assert.NotContains(t, string(critical), "info-message")

	verbose, err := os.ReadFile(filepath.Join(dir, "catalog.verbose.log"))
	require.NoError(t, err)
	assert.Contains(t, string(verbose), "debug-message")
	assert.NotContains(t, string(verbose), "info-message")
}

func TestSetup_Once(t *testing.T) {
	resetForTest()
	defer resetForTest()

	opts := Options{Name: "once", Dir: t.TempDir()}

	c1, err1 := Setup(opts)
	c2, err2 := Setup(Options{})

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Same(t, c1, c2)
	require.NoError(t, c1.Close())
	assert.NoError(t, c1.Close(), "두 번째 Close 호출은 nil을 반환해야 합니다")
}

func TestProfiles(t *testing.T) {
	t.Parallel()

	prod := NewProductionOptions("app")
	assert.Equal(t, InfoLevel, prod.Level)
	assert.True(t, prod.EnableCriticalLog)
	assert.False(t, prod.EnableConsoleLog)

	dev := NewDevelopmentOptions("app")
	assert.Equal(t, TraceLevel, dev.Level)
	assert.True(t, dev.EnableConsoleLog)
	assert.False(t, dev.EnableVerboseLog)
}
