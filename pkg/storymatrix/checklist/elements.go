package checklist

import (
	"fmt"
	"strings"
)

// UnknownElement is the element type of test IDs no rule matches.
const UnknownElement = "Element"

type rule struct {
	pattern string
	kind    string
}

// elementRules is matched in order against the lower-cased test ID; the
// first substring hit wins.
var elementRules = []rule{
	{"btn-", "Button"},
	{"button", "Button"},
	{"submit", "Button"},
	{"input-", "Input"},
	{"select-", "Select"},
	{"filter-", "Filter"},
	{"search", "Input"},
	{"checkbox", "Checkbox"},
	{"toggle", "Toggle"},
	{"switch", "Toggle"},
	{"table", "Table"},
	{"row-", "TableRow"},
	{"dialog", "Dialog"},
	{"modal", "Dialog"},
	{"container", "Container"},
	{"page", "Container"},
	{"title", "Heading"},
	{"header", "Header"},
	{"card", "Card"},
	{"stat-", "StatCard"},
	{"tab", "Tab"},
	{"link", "Link"},
	{"loading", "Loading"},
	{"skeleton", "Loading"},
	{"empty", "EmptyState"},
	{"error", "ErrorMessage"},
	{"alert", "Alert"},
	{"form", "Form"},
	{"list", "List"},
	{"menu", "Menu"},
	{"dropdown", "Dropdown"},
	{"avatar", "Avatar"},
	{"badge", "Badge"},
	{"icon", "Icon"},
	{"image", "Image"},
	{"label", "Label"},
	{"text", "Text"},
	{"tooltip", "Tooltip"},
	{"pagination", "Pagination"},
	{"sidebar", "Sidebar"},
	{"nav", "Navigation"},
}

var actions = map[string]string{
	"Button":       "Click",
	"Input":        "Fill text",
	"Select":       "Select option",
	"Filter":       "Select filter",
	"Checkbox":     "Check/Uncheck",
	"Toggle":       "Toggle on/off",
	"Table":        "Check visible, count rows",
	"TableRow":     "Click to select",
	"Dialog":       "Check visible, close",
	"Container":    "Check visible",
	"Heading":      "Get text, check visible",
	"Header":       "Check visible",
	"Card":         "Check visible, click",
	"StatCard":     "Get value",
	"Tab":          "Click to switch",
	"Link":         "Click to navigate",
	"Loading":      "Wait for disappear",
	"EmptyState":   "Check visible when no data",
	"ErrorMessage": "Check text content",
	"Alert":        "Check visible, get message",
	"Form":         "Fill and submit",
	"List":         "Check items count",
	"Menu":         "Open, select item",
	"Dropdown":     "Open, select option",
	"Avatar":       "Check visible",
	"Badge":        "Get text",
	"Icon":         "Check visible",
	"Image":        "Check loaded",
	"Label":        "Get text",
	"Text":         "Get text content",
	"Tooltip":      "Hover to show",
	"Pagination":   "Click next/prev",
	"Sidebar":      "Check items, click",
	"Navigation":   "Check items, click",
}

var expectations = map[string]string{
	"Button":       "Click được, trigger action",
	"Input":        "Nhập được text, validation hoạt động",
	"Select":       "Mở dropdown, chọn được option",
	"Filter":       "Lọc dữ liệu theo giá trị đã chọn",
	"Checkbox":     "Check/uncheck được",
	"Toggle":       "Chuyển đổi trạng thái",
	"Table":        "Hiển thị dữ liệu, số dòng đúng",
	"TableRow":     "Click được, highlight row",
	"Dialog":       "Mở/đóng được, content đúng",
	"Container":    "Hiển thị đúng khi load trang",
	"Heading":      "Text hiển thị đúng",
	"Header":       "Hiển thị đúng vị trí",
	"Card":         "Hiển thị nội dung đúng",
	"StatCard":     "Hiển thị số liệu đúng",
	"Tab":          "Chuyển tab, content thay đổi",
	"Link":         "Navigate đến đúng trang",
	"Loading":      "Hiển thị khi loading, ẩn khi xong",
	"EmptyState":   "Hiển thị khi không có dữ liệu",
	"ErrorMessage": "Hiển thị lỗi với message đúng",
	"Alert":        "Hiển thị thông báo đúng",
	"Form":         "Submit thành công, validation",
	"List":         "Hiển thị đúng số item",
	"Pagination":   "Chuyển trang, data load đúng",
}

// descriptions is matched in order against the test ID with dashes and
// underscores turned into spaces.
var descriptions = []struct {
	key  string
	text string
}{
	{"container", "Container chính của trang"},
	{"page title", "Tiêu đề trang"},
	{"submit button", "Nút gửi/xác nhận"},
	{"btn save", "Nút lưu"},
	{"btn create", "Nút tạo mới"},
	{"btn delete", "Nút xóa"},
	{"btn edit", "Nút chỉnh sửa"},
	{"btn cancel", "Nút hủy"},
	{"btn close", "Nút đóng"},
	{"btn add", "Nút thêm"},
	{"btn refresh", "Nút làm mới"},
	{"btn export", "Nút xuất dữ liệu"},
	{"btn import", "Nút nhập dữ liệu"},
	{"input email", "Ô nhập email"},
	{"input password", "Ô nhập mật khẩu"},
	{"input search", "Ô tìm kiếm"},
	{"input name", "Ô nhập tên"},
	{"select status", "Dropdown chọn trạng thái"},
	{"select role", "Dropdown chọn vai trò"},
	{"filter", "Bộ lọc"},
	{"table", "Bảng dữ liệu"},
	{"dialog", "Hộp thoại"},
	{"modal", "Hộp thoại modal"},
	{"loading", "Hiệu ứng đang tải"},
	{"skeleton", "Skeleton loading"},
	{"empty", "Trạng thái rỗng"},
	{"error", "Thông báo lỗi"},
	{"stat", "Thẻ thống kê"},
	{"card", "Thẻ nội dung"},
	{"form", "Biểu mẫu"},
	{"list", "Danh sách"},
	{"row", "Dòng dữ liệu"},
}

var idSpacer = strings.NewReplacer("-", " ", "_", " ")

// ElementType guesses the UI element kind from a test ID.
func ElementType(id string) string {
	lower := strings.ToLower(id)
	for _, r := range elementRules {
		if strings.Contains(lower, r.pattern) {
			return r.kind
		}
	}
	return UnknownElement
}

// Action suggests how a tester drives an element of the given kind.
func Action(kind string) string {
	if a, ok := actions[kind]; ok {
		return a
	}
	return "Check visible"
}

// Expected returns the expected result for an element of the given kind.
func Expected(kind string) string {
	if e, ok := expectations[kind]; ok {
		return e
	}
	return "Hiển thị và hoạt động đúng"
}

// Describe returns a short Vietnamese description of a test ID.
func Describe(id, kind string) string {
	spaced := idSpacer.Replace(id)
	lower := strings.ToLower(spaced)
	for _, d := range descriptions {
		if strings.Contains(lower, d.key) {
			return d.text
		}
	}
	return fmt.Sprintf("%s: %s", kind, spaced)
}

// Priority ranks interactive elements above display-only ones.
func Priority(kind string) string {
	switch kind {
	case "Button", "Input", "Form", "Dialog":
		return "High"
	}
	return "Medium"
}
