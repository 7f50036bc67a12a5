package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lumen/internal/models/db_models"
)

type PublishedImage struct {
	ImageURL   string `json:"image_url"`
	AuthorName string `json:"author_name"`
	CreatedAt  int64  `json:"created_at"`
}

type ChatRepository interface {
	Insert(ctx context.Context, chat *db_models.Chat) error
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Chat, error)
	FindByIDForAccount(ctx context.Context, chatID, accountID uuid.UUID) (*db_models.Chat, error)
	Delete(ctx context.Context, chatID, accountID uuid.UUID) (bool, error)
	AppendMessage(ctx context.Context, message *db_models.Message) error
	PublishedImages(ctx context.Context) ([]PublishedImage, error)
}

type chatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepository{db: db}
}

func (r *chatRepository) Insert(ctx context.Context, chat *db_models.Chat) error {
	return r.db.WithContext(ctx).Create(chat).Error
}

func (r *chatRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Chat, error) {
	var chats []db_models.Chat
	err := r.db.WithContext(ctx).
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("messages.created_at ASC")
		}).
		Where("account_id = ?", accountID).
		Order("updated_at DESC").
		Find(&chats).Error
	return chats, err
}

func (r *chatRepository) FindByIDForAccount(ctx context.Context, chatID, accountID uuid.UUID) (*db_models.Chat, error) {
	var chat db_models.Chat
	err := r.db.WithContext(ctx).
		First(&chat, "id = ? AND account_id = ?", chatID, accountID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &chat, nil
}

func (r *chatRepository) Delete(ctx context.Context, chatID, accountID uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND account_id = ?", chatID, accountID).
		Delete(&db_models.Chat{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *chatRepository) AppendMessage(ctx context.Context, message *db_models.Message) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(message).Error; err != nil {
			return err
		}
		// Touch the chat so listings sort by latest activity.
		return tx.Model(&db_models.Chat{}).
			Where("id = ?", message.ChatID).
			Update("updated_at", message.CreatedAt).Error
	})
}

func (r *chatRepository) PublishedImages(ctx context.Context) ([]PublishedImage, error) {
	var images []PublishedImage
	err := r.db.WithContext(ctx).
		Table("messages").
		Select("messages.content AS image_url, chats.author_name AS author_name, messages.created_at AS created_at").
		Joins("JOIN chats ON chats.id = messages.chat_id AND chats.deleted_at IS NULL").
		Where("messages.is_image = ? AND messages.is_published = ? AND messages.deleted_at IS NULL", true, true).
		Order("messages.created_at DESC").
		Scan(&images).Error
	return images, err
}
