package controller

import (
	"fmt"

	"codeberg.org/snonux/vidshare/internal/api"
	"codeberg.org/snonux/vidshare/internal/format"
)

// User-facing texts, zh-CN like the web page served next to the API.
const (
	Glyph             = "🎬"
	TextInvalidType   = "请上传视频文件！"
	TextUploadSuccess = "✅ 视频上传成功！"
	TextUploadFailed  = "❌ 上传失败，请重试"
	TextNetworkError  = "❌ 网络错误，上传失败"
	TextUploadBusy    = "⏳ 已有视频正在上传，请稍候"
	TextLoading       = "加载中..."
	TextEmpty         = "暂无视频\n请上传视频文件"
	TextNoVideo       = "选择一个视频开始播放"
)

// UploadingLabel is the text next to the progress bar.
func UploadingLabel(percent int) string {
	return fmt.Sprintf("上传中... %d%%", percent)
}

// UploadError is shown for failures that happen before the request leaves
// the machine, such as an unreadable file.
func UploadError(err error) string {
	return "❌ 上传失败: " + err.Error()
}

// LoadFailed is rendered in place of the list when fetching it fails.
func LoadFailed(err error) string {
	return "加载失败\n" + err.Error()
}

// Caption describes the video being played.
func Caption(v api.Video) string {
	return fmt.Sprintf("正在播放: %s (%s)", v.Name, format.FileSize(v.Size))
}
