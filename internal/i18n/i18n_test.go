package i18n

import "testing"

func TestGetRegisteredTags(t *testing.T) {
	tests := []struct {
		tag  string
		want *Messages
	}{
		{"en", EN},
		{"zh_TW", ZhTW},
		{"zh_CN", ZhCN},
		{"ja", JA},
		{"ko", KO},
	}

	for _, tt := range tests {
		if got := Get(tt.tag); got != tt.want {
			t.Errorf("Get(%q): wrong table", tt.tag)
		}
	}
}

func TestGetAliases(t *testing.T) {
	tests := []struct {
		tag  string
		want *Messages
	}{
		{"zh", ZhTW},
		{"ja_JP", JA},
		{"ko_KR", KO},
		{"en_US", EN},
		{"en_GB", EN},
	}

	for _, tt := range tests {
		if got := Get(tt.tag); got != tt.want {
			t.Errorf("Get(%q): wrong table", tt.tag)
		}
	}
}

func TestGetUnknownFallsBackToEnglish(t *testing.T) {
	if got := Get("fr"); got != EN {
		t.Error("expected English fallback for unknown tag")
	}
}

func TestGetAutoUsesEnvironment(t *testing.T) {
	t.Setenv("LC_ALL", "ja_JP.UTF-8")
	t.Setenv("LANG", "")

	if got := Get("auto"); got != JA {
		t.Error("expected Japanese table from LC_ALL")
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name  string
		lcAll string
		lang  string
		want  string
	}{
		{"lc_all full tag", "zh_TW.UTF-8", "", "zh_TW"},
		{"lc_all wins over lang", "ko_KR.UTF-8", "ja_JP.UTF-8", "ko"},
		{"lang alias", "", "zh.UTF-8", "zh_TW"},
		{"lang prefix", "", "ja_JP@mod", "ja"},
		{"unknown locale", "", "fr_FR.UTF-8", "en"},
		{"nothing set", "", "", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LC_ALL", tt.lcAll)
			t.Setenv("LANG", tt.lang)

			if got := Detect(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestSupportedTagsResolve(t *testing.T) {
	for _, tag := range Supported() {
		if tag == "auto" {
			continue
		}
		if Get(tag) == EN && tag != "en" {
			t.Errorf("tag %q fell back to English", tag)
		}
	}
}
