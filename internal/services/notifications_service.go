package services

import (
	"context"
	"fmt"
	"html"

	"odyssweb/internal/apiclient"
	"odyssweb/internal/domain"
	"odyssweb/internal/utils"
)

// NotificationsService reads the user's in-app notifications and sends
// transactional email through the backend's bulk-email endpoint.
type NotificationsService struct {
	API       *apiclient.Client
	BaseURL   string // public site origin used in invitation links
	RequestID string
}

// List returns the current user's notifications, newest first.
func (s NotificationsService) List(ctx context.Context) ([]domain.Notification, error) {
	var out []domain.Notification
	if err := s.API.Get(ctx, "/notifications/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MarkRead flags a single notification as read.
func (s NotificationsService) MarkRead(ctx context.Context, notificationID string) error {
	if notificationID == "" {
		return domain.ValidationError{Field: "notification_id", Msg: "notification id is required"}
	}
	return s.API.Patch(ctx, "/notifications/"+notificationID+"/read", nil, nil)
}

// MarkAllRead flags every unread notification as read.
func (s NotificationsService) MarkAllRead(ctx context.Context) error {
	return s.API.Patch(ctx, "/notifications/read-all", nil, nil)
}

type BulkEmailRecipients struct {
	Type   string   `json:"type"`
	Emails []string `json:"emails"`
}

type BulkEmailRequest struct {
	Name       string              `json:"name"`
	Subject    string              `json:"subject"`
	Content    string              `json:"content"`
	Recipients BulkEmailRecipients `json:"recipients"`
}

type BulkEmailResponse struct {
	Message     string `json:"message"`
	SentCount   int    `json:"sent_count"`
	FailedCount int    `json:"failed_count"`
}

func (s NotificationsService) SendBulkEmail(ctx context.Context, data BulkEmailRequest) (BulkEmailResponse, error) {
	if len(data.Recipients.Emails) == 0 {
		return BulkEmailResponse{}, domain.ValidationError{Field: "recipients", Msg: "at least one recipient is required"}
	}
	if data.Recipients.Type == "" {
		data.Recipients.Type = "list"
	}
	var resp BulkEmailResponse
	if err := s.API.Post(ctx, "/notifications/bulk-email/send", data, &resp); err != nil {
		return BulkEmailResponse{}, err
	}
	utils.LogEvent(s.RequestID, "notifications", "bulk_email", fmt.Sprintf("sent=%d failed=%d", resp.SentCount, resp.FailedCount))
	return resp, nil
}

// SendInvitationEmail mails a single user a link to a circle's page.
func (s NotificationsService) SendInvitationEmail(ctx context.Context, recipientEmail, circleID, circleName, inviterName string) (BulkEmailResponse, error) {
	if utils.TrimOrEmpty(recipientEmail) == "" {
		return BulkEmailResponse{}, domain.ValidationError{Field: "email", Msg: "recipient email is required"}
	}
	if circleID == "" {
		return BulkEmailResponse{}, domain.ValidationError{Field: "circle_id", Msg: "circle id is required"}
	}

	link := fmt.Sprintf("%s/circles?circle_id=%s", s.BaseURL, circleID)
	safeCircle := html.EscapeString(circleName)
	safeInviter := html.EscapeString(inviterName)

	content := fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #333;">You've been invited to join a trip!</h2>
  <p>Hi there!</p>
  <p><strong>%s</strong> has invited you to join their trip: <strong>%s</strong></p>
  <p>Click the button below to view the trip details and join:</p>
  <div style="text-align: center; margin: 30px 0;">
    <a href="%s" style="background-color: #000; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">View Trip Details</a>
  </div>
  <p>Or copy and paste this link into your browser:</p>
  <p style="word-break: break-all; color: #666;">%s</p>
  <hr style="margin: 30px 0; border: none; border-top: 1px solid #eee;">
  <p style="color: #666; font-size: 12px;">This invitation was sent from Odyss. If you have any questions, please contact support.</p>
</div>`, safeInviter, safeCircle, link, link)

	return s.SendBulkEmail(ctx, BulkEmailRequest{
		Name:    "Trip Invitation - " + circleName,
		Subject: inviterName + " invited you to join a trip!",
		Content: content,
		Recipients: BulkEmailRecipients{
			Type:   "list",
			Emails: []string{recipientEmail},
		},
	})
}
