package types

import "testing"

func TestBodyKindString(t *testing.T) {
	tests := []struct {
		kind BodyKind
		want string
	}{
		{BodyPlayer, "player"},
		{BodyInvader, "invader"},
		{BodyBullet, "bullet"},
		{BodyUnknown, "unknown"},
		{BodyKind(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("BodyKind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}
