package entity

import "time"

// DialogState шаг диалога проверки помещения
type DialogState string

const (
	StateIdle          DialogState = "idle"           // Ждёт команду
	StateAwaitingPhoto DialogState = "awaiting_photo" // Попросили прислать фото
	StateScanning      DialogState = "scanning"       // Фото в обработке
)

// User собеседник бота и итог его последней проверки
type User struct {
	ID         int64       // Telegram User ID
	ChatID     int64       // Telegram Chat ID
	State      DialogState // Текущий шаг диалога
	Scans      int         // Сколько фото проверено
	LastCount  int         // Бликов на последнем фото
	LastScanAt time.Time   // Когда закончилась последняя проверка
}

// NewUser создаёт пользователя, ожидающего команду
func NewUser(userID, chatID int64) *User {
	return &User{
		ID:     userID,
		ChatID: chatID,
		State:  StateIdle,
	}
}

// SetState переводит диалог на другой шаг
func (u *User) SetState(state DialogState) {
	u.State = state
}

// Scanning сообщает, что фото пользователя ещё обрабатывается.
func (u *User) Scanning() bool {
	return u.State == StateScanning
}

// RecordScan запоминает итог проверки и возвращает диалог в начало.
func (u *User) RecordScan(count int, at time.Time) {
	u.Scans++
	u.LastCount = count
	u.LastScanAt = at
	u.State = StateIdle
}

// HasScans сообщает, была ли хоть одна завершённая проверка.
func (u *User) HasScans() bool {
	return u.Scans > 0
}
