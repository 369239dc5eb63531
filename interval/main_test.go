package interval

import (
	"os"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestMain(m *testing.M) {
	// Task failure warnings are expected in several tests.
	// Set DEBUG_TESTS=1 to see full logs: DEBUG_TESTS=1 go test ./interval/... -v
	if os.Getenv("DEBUG_TESTS") == "" {
		logrus.SetLevel(logrus.ErrorLevel)
	}
	os.Exit(m.Run())
}
