package statscache

import "fmt"

func SummaryKey(userID, holidayID string) string {
	return fmt.Sprintf("stats:summary:%v:%v", userID, holidayID)
}
