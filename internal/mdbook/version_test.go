package mdbook

import "testing"

func TestVersionMatches(t *testing.T) {
	tests := []struct {
		name    string
		version string
		want    bool
		wantErr bool
	}{
		{name: "exact version", version: Version, want: true},
		{name: "newer patch", version: "0.4.52", want: true},
		{name: "older patch", version: "0.4.28", want: false},
		{name: "next minor", version: "0.5.0", want: false},
		{name: "next major", version: "1.0.0", want: false},
		{name: "garbage", version: "not-a-version", wantErr: true},
		{name: "empty", version: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := VersionMatches(tt.version)
			if tt.wantErr {
				if err == nil {
					t.Error("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("VersionMatches(%q) failed: %v", tt.version, err)
			}
			if got != tt.want {
				t.Errorf("VersionMatches(%q) = %v, want %v", tt.version, got, tt.want)
			}
		})
	}
}
