package version

import "testing"

func TestGetVersionInfo(t *testing.T) {
	info := GetVersionInfo()
	if info.Version == "" {
		t.Fatal("expected a version string")
	}
	if info.BuildTime == "" {
		t.Fatal("expected a build time")
	}
	if info.Version == "dev" && info.IsRelease {
		t.Fatal("dev build must not report as release")
	}
}

func TestInfo_String(t *testing.T) {
	i := &Info{Version: "1.2.3", GitCommit: "abc1234"}
	if got := i.String(); got != "1.2.3 (abc1234)" {
		t.Fatalf("unexpected string: %q", got)
	}

	i = &Info{Version: "dev"}
	if got := i.String(); got != "dev" {
		t.Fatalf("unexpected string: %q", got)
	}
}
