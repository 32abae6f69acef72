package object

import (
	"os"
	"testing"
)

func TestMain(m *testing.M) {
	Bootstrap()
	os.Exit(m.Run())
}
