// Package month содержит арифметику календарных месяцев для сроков подписок.
package month

import "time"

// Add сдвигает t на n календарных месяцев, сохраняя время суток и часовой пояс.
//
// Несуществующая дата нормализуется вперёд, как в time.AddDate:
// 31 января + 1 месяц = 3 марта (2 марта в високосный год).
func Add(t time.Time, n int) time.Time {
	return t.AddDate(0, n, 0)
}
