package guard

import (
	"os"
	"sync"
)

var once sync.Once

func init() {
	once.Do(func() {
		if os.Getenv("SITEHUB_TEST_MODE") == "" {
			_ = os.Setenv("SITEHUB_TEST_MODE", "1")
		}
	})
}
