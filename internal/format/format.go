// Package format renders byte counts and timestamps the way the video list
// shows them.
package format

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

var sizeUnits = []string{"B", "KB", "MB", "GB"}

// FileSize scales bytes into B/KB/MB/GB (base 1024) rounded to two decimals.
func FileSize(bytes int64) string {
	if bytes <= 0 {
		return "0 B"
	}
	value := float64(bytes)
	i := 0
	for i < len(sizeUnits)-1 && value >= 1024 {
		value /= 1024
		i++
	}
	rounded := math.Round(value*100) / 100
	return strconv.FormatFloat(rounded, 'f', -1, 64) + " " + sizeUnits[i]
}

// Age describes t relative to now: minutes and hours within a day, days
// within a week, otherwise the calendar date.
func Age(t, now time.Time) string {
	diff := now.Sub(t)
	if diff < 0 {
		diff = 0
	}
	if diff < 24*time.Hour {
		hours := int(diff / time.Hour)
		if hours == 0 {
			minutes := int(diff / time.Minute)
			if minutes == 0 {
				return "刚刚"
			}
			return fmt.Sprintf("%d分钟前", minutes)
		}
		return fmt.Sprintf("%d小时前", hours)
	}
	if diff < 7*24*time.Hour {
		return fmt.Sprintf("%d天前", int(diff/(24*time.Hour)))
	}
	return Date(t)
}

// Date formats t as a zh-CN short date, e.g. 2024/3/5.
func Date(t time.Time) string {
	return t.Local().Format("2006/1/2")
}
