package catalog

import "strings"

// Postgres сообщает о нарушении ограничений текстом ошибки;
// различаем по SQLSTATE и ключевым словам
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "unique constraint") || strings.Contains(err.Error(), "23505")
}

func isForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "foreign key constraint") || strings.Contains(err.Error(), "23503")
}
