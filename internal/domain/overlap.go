package domain

import "time"

// Overlaps проверяет пересечение двух временных интервалов [start, end)
// Интервалы пересекаются, только если:
// - начало кандидата СТРОГО раньше конца существующего И
// - конец кандидата СТРОГО позже начала существующего
//
// Граничные случаи НЕ считаются пересечением: бронирования "впритык"
// (одно заканчивается ровно там, где начинается другое) допустимы.
//
// Примеры:
// - Существующее 11:00-12:00, кандидат 11:30-12:30 → ЕСТЬ пересечение
// - Существующее 11:00-12:00, кандидат 12:00-13:00 → НЕТ пересечения (граничат)
// - Существующее 11:00-12:00, кандидат 10:00-11:00 → НЕТ пересечения (граничат)
//
// Это единственное определение конфликта бронирований в сервисе
func Overlaps(existingStart, existingEnd, candidateStart, candidateEnd time.Time) bool {
	return candidateStart.Before(existingEnd) && candidateEnd.After(existingStart)
}

// BookingsOverlap проверяет пересечение окна кандидата с существующим бронированием
func BookingsOverlap(existing *Booking, candidateStart, candidateEnd time.Time) bool {
	return Overlaps(existing.StartDate, existing.EndDate, candidateStart, candidateEnd)
}
