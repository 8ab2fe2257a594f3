// Package storage содержит персистентное хранилище сохранений —
// key-value поверх SQLite плюс in-memory реализация для тестов.
package storage

// KV — хранилище строковых значений по ключу. Менеджер сохранений
// кладёт сюда JSON-документы, по одному на вариант игры.
type KV interface {
	// Get возвращает значение и признак наличия ключа.
	Get(key string) (string, bool, error)
	// Set записывает значение, замещая прежнее.
	Set(key, value string) error
	// Delete удаляет ключ. Отсутствующий ключ не ошибка.
	Delete(key string) error
	// Keys возвращает все ключи хранилища.
	Keys() ([]string, error)

	Close() error
}
