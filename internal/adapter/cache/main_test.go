package cache

import (
	"os"
	"testing"

	"github.com/Hitesh-malik/e-commer-with-ai/internal/logging"
)

func TestMain(m *testing.M) {
	dir, _ := os.MkdirTemp("", "storefront-test")
	logging.Init("test", dir+"/app.log")
	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}
