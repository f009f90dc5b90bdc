package service

import (
	"context"
	"encoding/json"

	"gramseva/internal/domain"
	"gramseva/internal/models"
	"gramseva/internal/repository"
)

type NotificationService struct {
	repo     *repository.NotificationRepository
	userRepo *repository.UserRepository
	fcm      *FCMService
}

func NewNotificationService(repo *repository.NotificationRepository, userRepo *repository.UserRepository, fcm *FCMService) *NotificationService {
	return &NotificationService{repo: repo, userRepo: userRepo, fcm: fcm}
}

func (s *NotificationService) Notify(userID uint, notifType, title, body string, data map[string]interface{}) error {
	var dataJSON string
	if data != nil {
		b, _ := json.Marshal(data)
		dataJSON = string(b)
	}
	err := s.repo.Create(&models.Notification{
		UserID: userID,
		Type:   notifType,
		Title:  title,
		Body:   body,
		Data:   dataJSON,
	})
	if err != nil {
		return err
	}
	s.sendPush(userID, title, body, data)
	return nil
}

func (s *NotificationService) sendPush(userID uint, title, body string, data map[string]interface{}) {
	if s.fcm == nil || s.userRepo == nil {
		return
	}
	u, err := s.userRepo.GetByID(userID)
	if err != nil || u == nil || u.FCMToken == "" {
		return
	}
	strData := make(map[string]string, len(data))
	for k, v := range data {
		if sv, ok := v.(string); ok {
			strData[k] = sv
			continue
		}
		b, _ := json.Marshal(v)
		strData[k] = string(b)
	}
	_ = s.fcm.Send(context.Background(), u.FCMToken, title, body, strData)
}

// NotifyAccountStatus tells a citizen their registration was approved or
// rejected by the panchayat office.
func (s *NotificationService) NotifyAccountStatus(userID uint, status string) error {
	if status == domain.UserStatusApproved {
		return s.Notify(userID, "ACCOUNT_APPROVED", "Account approved",
			"Your account has been approved. You can now use all citizen services.", nil)
	}
	return s.Notify(userID, "ACCOUNT_REJECTED", "Account not approved",
		"Your registration could not be approved. Please contact the Gram Panchayat office.", nil)
}

// NotifyItemModerated tells a seller the outcome of marketplace moderation.
func (s *NotificationService) NotifyItemModerated(sellerID, itemID uint, approved bool) error {
	if approved {
		return s.Notify(sellerID, "ITEM_APPROVED", "Listing published",
			"Your marketplace listing is now visible to everyone.", map[string]interface{}{"item_id": itemID})
	}
	return s.Notify(sellerID, "ITEM_REJECTED", "Listing rejected",
		"Your marketplace listing was not approved.", map[string]interface{}{"item_id": itemID})
}
