package cycle

import "fmt"

// UserCountText renders the joined count with the correctly declined
// Russian noun: 1 пользователь, 2 пользователя, 5 пользователей,
// with the 11-14 exception band falling into the last form.
func UserCountText(count int) string {
	switch {
	case count%10 == 1 && count%100 != 11:
		return fmt.Sprintf("%d пользователь", count)
	case count%10 >= 2 && count%10 <= 4 && (count%100 < 10 || count%100 >= 20):
		return fmt.Sprintf("%d пользователя", count)
	default:
		return fmt.Sprintf("%d пользователей", count)
	}
}
