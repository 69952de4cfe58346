package filter

import (
	"strings"
	"time"

	"github.com/ButyrinIA/forum-search/internal/models"
)

// Criteria - набор необязательных условий фильтрации. Пустой Search и
// nil-границы означают отсутствие соответствующего условия.
type Criteria struct {
	Search    string
	StartDate *time.Time
	EndDate   *time.Time
}

// Filter возвращает посты, удовлетворяющие всем активным условиям,
// с сохранением исходного порядка. Входной срез не изменяется.
//
// Поиск - вхождение подстроки без учета регистра. Границы дат включительные.
// Временные метки постов разбираются только при активной границе даты;
// при неразбираемой метке возвращается ошибка ErrMalformedTimestamp без
// частичного результата.
func Filter(posts []models.Post, c Criteria) ([]models.Post, error) {
	search := strings.ToLower(c.Search)
	result := make([]models.Post, 0, len(posts))

	for _, post := range posts {
		if search != "" && !strings.Contains(strings.ToLower(post.Content), search) {
			continue
		}

		if c.StartDate != nil || c.EndDate != nil {
			ts, err := ParseTimestamp(post.Timestamp)
			if err != nil {
				return nil, err
			}
			if c.StartDate != nil && ts.Before(*c.StartDate) {
				continue
			}
			if c.EndDate != nil && ts.After(*c.EndDate) {
				continue
			}
		}

		result = append(result, post)
	}

	return result, nil
}
