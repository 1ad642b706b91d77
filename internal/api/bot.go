package telegram

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"lens-finder/internal/container"
	"lens-finder/internal/domain/entity"
	"lens-finder/internal/infrastructure/vision"
	"lens-finder/internal/log"
)

const (
	msgStart = `👋 Привет! Я бот для поиска скрытых камер по бликам объектива.

📸 Отправьте мне фото помещения, снятое со вспышкой, и я отмечу маленькие круглые блики.

📋 Команды:
/check — начать проверку
/last — итог последней проверки
/help — справка
/cancel — отменить текущую операцию`

	msgHelp = `ℹ️ Как пользоваться ботом:

1️⃣ Выключите свет и снимите помещение со вспышкой
2️⃣ Отправьте фото боту
3️⃣ Вы получите результат: текст + фото с рамками вокруг бликов

💡 Рекомендации:
• Снимайте подозрительные предметы с расстояния 1–2 метра
• Блики у самого края кадра не учитываются
• Крупные светлые пятна (лампы, окна) отбрасываются

📋 Команды:
/check — начать проверку
/cancel — отменить операцию`

	msgAwaitingPhoto   = "📸 Отправьте фото помещения для поиска бликов."
	msgCancelled       = "❌ Операция отменена. Отправьте /check для новой проверки."
	msgSendPhoto       = "📸 Пожалуйста, отправьте фото помещения для поиска бликов."
	msgUnknownCommand  = "❓ Неизвестная команда. Используйте /help для справки."
	msgNoScans         = "ℹ️ Вы ещё не присылали фото на проверку. Отправьте /check."
	msgLastScan        = "📋 Последняя проверка %s: бликов %d. Всего проверено фото: %d."
	msgProcessing      = "⏳ Обрабатываю изображение..."
	msgBadImage        = "⚠️ Не удалось прочитать изображение. Отправьте фото в формате JPEG или PNG."
	msgProcessingError = "⚠️ Не удалось обработать изображение. Попробуйте сделать другое фото."
	msgInternalError   = "⚠️ Внутренняя ошибка. Попробуйте позже."
)

// botAPI описывает методы Telegram API, которыми пользуется бот.
type botAPI interface {
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	GetFile(config tgbotapi.FileConfig) (tgbotapi.File, error)
}

// Bot представляет Telegram-бота
type Bot struct {
	api      botAPI
	token    string
	app      *container.Container
	download func(ctx context.Context, fileID string) ([]byte, error)
}

// NewBot создаёт нового бота
func NewBot(token string, app *container.Container) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	log.Info("authorized on telegram", "account", api.Self.UserName)

	return newBot(api, token, app), nil
}

func newBot(api botAPI, token string, app *container.Container) *Bot {
	b := &Bot{
		api:   api,
		token: token,
		app:   app,
	}
	b.download = b.downloadFile
	return b
}

// Run запускает основной цикл обработки сообщений до отмены ctx
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	defer b.api.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil {
				continue
			}
			b.handleMessage(ctx, update.Message)
		}
	}
}

// handleMessage обрабатывает входящее сообщение
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil || msg.Chat == nil {
		return
	}

	// Обработка команд
	if msg.IsCommand() {
		b.handleCommand(ctx, msg)
		return
	}

	// Обработка фото
	if len(msg.Photo) > 0 {
		b.handlePhoto(ctx, msg)
		return
	}

	// Текстовое сообщение (не команда)
	b.sendMessage(msg.Chat.ID, msgSendPhoto)
}

// handleCommand обрабатывает команды бота
func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	users := b.app.UserService
	userID, chatID := msg.From.ID, msg.Chat.ID

	var (
		reply string
		err   error
	)
	switch msg.Command() {
	case "start":
		_, err = users.SetState(ctx, userID, chatID, entity.StateIdle)
		reply = msgStart
	case "help":
		reply = msgHelp
	case "check":
		_, err = users.BeginCheck(ctx, userID, chatID)
		reply = msgAwaitingPhoto
	case "last":
		var user *entity.User
		user, err = users.Get(ctx, userID, chatID)
		if err == nil {
			reply = lastScanText(user)
		}
	case "cancel":
		_, err = users.Cancel(ctx, userID, chatID)
		reply = msgCancelled
	default:
		reply = msgUnknownCommand
	}

	if err != nil {
		log.Error("failed to update user state", "command", msg.Command(), "user_id", userID, "error", err)
		reply = msgInternalError
	}
	b.sendMessage(chatID, reply)
}

// handlePhoto обрабатывает входящее фото
func (b *Bot) handlePhoto(ctx context.Context, msg *tgbotapi.Message) {
	scans := b.app.ScanService
	userID, chatID := msg.From.ID, msg.Chat.ID

	if _, err := scans.AcceptPhoto(ctx, userID, chatID); err != nil {
		log.Error("failed to accept photo", "user_id", userID, "error", err)
		b.sendMessage(chatID, msgInternalError)
		return
	}
	// Без результата диалог просто сбрасывается.
	var result *entity.ScanResult
	defer func() {
		if _, err := scans.Finish(ctx, userID, chatID, result); err != nil {
			log.Error("failed to finish scan", "user_id", userID, "error", err)
		}
	}()

	b.sendMessage(chatID, msgProcessing)

	// Получаем файл с максимальным разрешением
	photo := msg.Photo[len(msg.Photo)-1]

	imageData, err := b.download(ctx, photo.FileID)
	if err != nil {
		log.Error("failed to download photo", "file_id", photo.FileID, "error", err)
		b.sendMessage(chatID, msgProcessingError)
		return
	}

	out, err := scans.ProcessPhoto(ctx, imageData)
	if err != nil {
		log.Error("failed to scan photo", "user_id", userID, "bytes", len(imageData), "error", err)
		if errors.Is(err, vision.ErrDecode) || errors.Is(err, vision.ErrEmptyImage) {
			b.sendMessage(chatID, msgBadImage)
		} else {
			b.sendMessage(chatID, msgProcessingError)
		}
		return
	}

	result = out.Result

	log.Info("photo scanned",
		"user_id", userID,
		"width", out.Result.ImageWidth,
		"height", out.Result.ImageHeight,
		"count", out.Result.Count,
		"rejected", out.Result.Rejected,
	)

	text := vision.CountLabel(out.Result.Count)
	if out.Description != nil {
		text = out.Description.Text
	}
	b.sendMessage(chatID, text)

	if len(out.Highlighted) > 0 {
		b.sendPhoto(chatID, out.Highlighted, vision.CountLabel(out.Result.Count))
	}
}

// lastScanText описывает итог последней проверки пользователя
func lastScanText(user *entity.User) string {
	if !user.HasScans() {
		return msgNoScans
	}
	return fmt.Sprintf(msgLastScan, user.LastScanAt.Format("02.01.2006 15:04"), user.LastCount, user.Scans)
}

// downloadFile скачивает файл из Telegram
func (b *Bot) downloadFile(ctx context.Context, fileID string) ([]byte, error) {
	file, err := b.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("get file: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, file.Link(b.token), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download file: unexpected status %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return data, nil
}

// sendMessage отправляет текстовое сообщение
func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		log.Error("failed to send message", "chat_id", chatID, "error", err)
	}
}

// sendPhoto отправляет JPEG с подписью
func (b *Bot) sendPhoto(chatID int64, data []byte, caption string) {
	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: "scan.jpg", Bytes: data})
	photo.Caption = caption
	if _, err := b.api.Send(photo); err != nil {
		log.Error("failed to send photo", "chat_id", chatID, "error", err)
	}
}
