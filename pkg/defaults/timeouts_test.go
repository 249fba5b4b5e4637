package defaults

import (
	"testing"
	"time"
)

func TestTimeoutRelationships(t *testing.T) {
	if HTTPConnectTimeout >= HTTPClientTimeout {
		t.Error("connect timeout should be shorter than total client timeout")
	}
	if HTTPResponseHeaderTimeout >= HTTPClientTimeout {
		t.Error("response header timeout should be shorter than total client timeout")
	}
	if FetchInterval <= 0 {
		t.Error("fetch interval must be positive")
	}
	if CLIGenerateTimeout < time.Minute {
		t.Error("generate timeout should allow at least a minute")
	}
}
