// Package i18n provides the localized message tables used by the
// dashboard and the state engine. Tables are immutable: they are built
// once at package init and handed around by pointer, never mutated.
package i18n

import (
	"os"
	"strings"
)

// Messages holds every user-visible string for one locale.
//
// Tool templates take one %s argument (file name, command, pattern or
// description). Time templates take one %d argument.
type Messages struct {
	// Dashboard panel
	PanelTitle       string
	NoSessions       string
	SessionsSubtitle string // %d sessions, %d active

	// State labels
	StateWorking    string
	StateThinking   string
	StatePermission string
	StateInput      string
	StateIdle       string

	// Status phrases
	StatusWaitingInput string
	StatusResponding   string
	StatusThinking     string

	// Tool display templates
	ToolReading       string
	ToolEditing       string
	ToolWriting       string
	ToolRunning       string
	ToolSearching     string
	ToolSubAgent      string
	ToolBrowsingWeb   string
	ToolFetchingWeb   string
	ToolUpdatingTodos string

	// Time-ago templates
	TimeSecondsAgo string
	TimeMinutesAgo string
	TimeHoursAgo   string

	// Footer, takes the data refresh interval in seconds
	Footer string
}

// EN is the English table and the fallback for unknown locales.
var EN = &Messages{
	PanelTitle:       "Active Agents",
	NoSessions:       "No active Claude sessions found",
	SessionsSubtitle: "%d sessions | %d active",

	StateWorking:    "Working",
	StateThinking:   "Thinking",
	StatePermission: "Permission",
	StateInput:      "Input",
	StateIdle:       "Idle",

	StatusWaitingInput: "Waiting for input",
	StatusResponding:   "Responding...",
	StatusThinking:     "Thinking...",

	ToolReading:       "Reading: %s",
	ToolEditing:       "Editing: %s",
	ToolWriting:       "Writing: %s",
	ToolRunning:       "Running: %s",
	ToolSearching:     "Searching: %s",
	ToolSubAgent:      "Sub-agent: %s",
	ToolBrowsingWeb:   "Browsing web",
	ToolFetchingWeb:   "Fetching web",
	ToolUpdatingTodos: "Updating todos",

	TimeSecondsAgo: "%ds ago",
	TimeMinutesAgo: "%dm ago",
	TimeHoursAgo:   "%dh ago",

	Footer: "Ctrl+C to exit | Data refresh: %ds",
}

// ZhTW is the Traditional Chinese table.
var ZhTW = &Messages{
	PanelTitle:       "活躍 Agent",
	NoSessions:       "未偵測到活躍的 Claude 工作階段",
	SessionsSubtitle: "%d 個工作階段 | %d 個活躍",

	StateWorking:    "工作中",
	StateThinking:   "思考中",
	StatePermission: "等待授權",
	StateInput:      "等待輸入",
	StateIdle:       "閒置",

	StatusWaitingInput: "等待使用者輸入",
	StatusResponding:   "回應中…",
	StatusThinking:     "思考中…",

	ToolReading:       "讀取：%s",
	ToolEditing:       "編輯：%s",
	ToolWriting:       "寫入：%s",
	ToolRunning:       "執行：%s",
	ToolSearching:     "搜尋：%s",
	ToolSubAgent:      "子代理：%s",
	ToolBrowsingWeb:   "瀏覽網頁",
	ToolFetchingWeb:   "擷取網頁",
	ToolUpdatingTodos: "更新待辦事項",

	TimeSecondsAgo: "%d秒前",
	TimeMinutesAgo: "%d分鐘前",
	TimeHoursAgo:   "%d小時前",

	Footer: "Ctrl+C 離開 | 資料刷新間隔：%d秒",
}

// ZhCN is the Simplified Chinese table.
var ZhCN = &Messages{
	PanelTitle:       "活跃 Agent",
	NoSessions:       "未检测到活跃的 Claude 工作会话",
	SessionsSubtitle: "%d 个会话 | %d 个活跃",

	StateWorking:    "工作中",
	StateThinking:   "思考中",
	StatePermission: "等待授权",
	StateInput:      "等待输入",
	StateIdle:       "空闲",

	StatusWaitingInput: "等待用户输入",
	StatusResponding:   "回应中…",
	StatusThinking:     "思考中…",

	ToolReading:       "读取：%s",
	ToolEditing:       "编辑：%s",
	ToolWriting:       "写入：%s",
	ToolRunning:       "执行：%s",
	ToolSearching:     "搜索：%s",
	ToolSubAgent:      "子代理：%s",
	ToolBrowsingWeb:   "浏览网页",
	ToolFetchingWeb:   "获取网页",
	ToolUpdatingTodos: "更新待办事项",

	TimeSecondsAgo: "%d秒前",
	TimeMinutesAgo: "%d分钟前",
	TimeHoursAgo:   "%d小时前",

	Footer: "Ctrl+C 退出 | 数据刷新间隔：%d秒",
}

// JA is the Japanese table.
var JA = &Messages{
	PanelTitle:       "アクティブエージェント",
	NoSessions:       "アクティブな Claude セッションが見つかりません",
	SessionsSubtitle: "%d セッション | %d アクティブ",

	StateWorking:    "作業中",
	StateThinking:   "思考中",
	StatePermission: "承認待ち",
	StateInput:      "入力待ち",
	StateIdle:       "アイドル",

	StatusWaitingInput: "ユーザー入力待ち",
	StatusResponding:   "応答中…",
	StatusThinking:     "思考中…",

	ToolReading:       "読込：%s",
	ToolEditing:       "編集：%s",
	ToolWriting:       "書込：%s",
	ToolRunning:       "実行：%s",
	ToolSearching:     "検索：%s",
	ToolSubAgent:      "サブエージェント：%s",
	ToolBrowsingWeb:   "Web 閲覧",
	ToolFetchingWeb:   "Web 取得",
	ToolUpdatingTodos: "ToDo 更新",

	TimeSecondsAgo: "%d秒前",
	TimeMinutesAgo: "%d分前",
	TimeHoursAgo:   "%d時間前",

	Footer: "Ctrl+C で終了 | データ更新間隔：%d秒",
}

// KO is the Korean table.
var KO = &Messages{
	PanelTitle:       "활성 에이전트",
	NoSessions:       "활성 Claude 세션을 찾을 수 없습니다",
	SessionsSubtitle: "%d개 세션 | %d개 활성",

	StateWorking:    "작업 중",
	StateThinking:   "생각 중",
	StatePermission: "승인 대기",
	StateInput:      "입력 대기",
	StateIdle:       "유휴",

	StatusWaitingInput: "사용자 입력 대기 중",
	StatusResponding:   "응답 중…",
	StatusThinking:     "생각 중…",

	ToolReading:       "읽기: %s",
	ToolEditing:       "편집: %s",
	ToolWriting:       "쓰기: %s",
	ToolRunning:       "실행: %s",
	ToolSearching:     "검색: %s",
	ToolSubAgent:      "서브 에이전트: %s",
	ToolBrowsingWeb:   "웹 탐색",
	ToolFetchingWeb:   "웹 가져오기",
	ToolUpdatingTodos: "할 일 업데이트",

	TimeSecondsAgo: "%d초 전",
	TimeMinutesAgo: "%d분 전",
	TimeHoursAgo:   "%d시간 전",

	Footer: "Ctrl+C로 종료 | 데이터 갱신 간격: %d초",
}

var registry = map[string]*Messages{
	"en":    EN,
	"zh_TW": ZhTW,
	"zh_CN": ZhCN,
	"ja":    JA,
	"ko":    KO,
}

// Common locale prefixes mapped to registered tags.
var aliases = map[string]string{
	"zh":    "zh_TW",
	"ja_JP": "ja",
	"ko_KR": "ko",
	"en_US": "en",
	"en_GB": "en",
}

// Supported returns the registered locale tags plus "auto".
func Supported() []string {
	return []string{"auto", "en", "zh_TW", "zh_CN", "ja", "ko"}
}

// Detect resolves the user locale from LC_ALL then LANG, falling back
// to English when neither maps to a registered table.
func Detect() string {
	for _, key := range []string{"LC_ALL", "LANG"} {
		if val := os.Getenv(key); val != "" {
			if tag, ok := resolveLocale(val); ok {
				return tag
			}
		}
	}
	return "en"
}

// resolveLocale maps a raw locale string such as "zh_TW.UTF-8" to a
// registered tag. Tries the full tag, then aliases, then the language
// prefix.
func resolveLocale(raw string) (string, bool) {
	tag, _, _ := strings.Cut(raw, ".")

	if _, ok := registry[tag]; ok {
		return tag, true
	}
	if alias, ok := aliases[tag]; ok {
		return alias, true
	}

	prefix, _, _ := strings.Cut(tag, "_")
	if _, ok := registry[prefix]; ok {
		return prefix, true
	}
	if alias, ok := aliases[prefix]; ok {
		return alias, true
	}

	return "", false
}

// Get returns the message table for the given tag. "auto" triggers
// environment detection; unknown tags fall back to English.
func Get(tag string) *Messages {
	if tag == "auto" || tag == "" {
		tag = Detect()
	}
	if alias, ok := aliases[tag]; ok {
		tag = alias
	}
	if msgs, ok := registry[tag]; ok {
		return msgs
	}
	return EN
}
