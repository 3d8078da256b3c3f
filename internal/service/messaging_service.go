package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/hagwonlab/academy-api/internal/kakao"
	"github.com/hagwonlab/academy-api/internal/models"
	"github.com/hagwonlab/academy-api/internal/repository"
)

// MessageSender delivers one outbound message; satisfied by *kakao.Client.
type MessageSender interface {
	Send(ctx context.Context, opts kakao.SendOptions) (*kakao.SendResult, error)
}

type MessagingService struct {
	channels *repository.KakaoRepository
	sender   MessageSender
}

func NewMessagingService(channels *repository.KakaoRepository, sender MessageSender) *MessagingService {
	return &MessagingService{channels: channels, sender: sender}
}

type SendMessageInput struct {
	Kind       string
	Recipient  string
	Body       string
	ChannelKey string
	AcademyID  *int64
}

// Send delivers an SMS or Kakao message and records the outcome. Failed sends
// are logged with status FAILED; there is no retry.
func (s *MessagingService) Send(ctx context.Context, input SendMessageInput) (*models.MessageLog, error) {
	kind, ok := models.ParseMessageKind(strings.ToUpper(input.Kind))
	if !ok {
		return nil, fmt.Errorf("%w: unknown message kind %q", ErrInvalidInput, input.Kind)
	}
	if strings.TrimSpace(input.Recipient) == "" {
		return nil, fmt.Errorf("%w: recipient is required", ErrInvalidInput)
	}
	if strings.TrimSpace(input.Body) == "" {
		return nil, fmt.Errorf("%w: body is required", ErrInvalidInput)
	}

	opts := kakao.SendOptions{
		Recipient: input.Recipient,
		Body:      input.Body,
		Kakao:     kind == models.MessageKakao,
	}
	if kind == models.MessageKakao {
		channel, err := s.channels.GetChannelByKey(ctx, input.ChannelKey)
		if err != nil {
			return nil, err
		}
		if channel == nil || !channel.Active {
			return nil, fmt.Errorf("%w: kakao channel", ErrNotFound)
		}
		opts.ChannelKey = channel.ChannelKey
		opts.Sender = channel.SenderNumber
	}

	log := &models.MessageLog{
		AcademyID:  input.AcademyID,
		ChannelKey: input.ChannelKey,
		Recipient:  input.Recipient,
		Kind:       kind,
		Body:       input.Body,
	}

	result, sendErr := s.sender.Send(ctx, opts)
	if sendErr != nil {
		log.Status = "FAILED"
		_ = s.channels.InsertMessageLog(ctx, log)
		return nil, fmt.Errorf("send message: %w", sendErr)
	}
	log.Status = result.Status
	log.ProviderMessageID = result.MessageID
	if err := s.channels.InsertMessageLog(ctx, log); err != nil {
		return nil, err
	}
	return log, nil
}

func (s *MessagingService) ListChannels(ctx context.Context, academyID *int64) ([]models.KakaoChannel, error) {
	return s.channels.ListChannels(ctx, academyID)
}

type CreateChannelInput struct {
	AcademyID    int64
	ChannelKey   string
	SenderNumber string
}

func (s *MessagingService) CreateChannel(ctx context.Context, input CreateChannelInput) (*models.KakaoChannel, error) {
	input.ChannelKey = strings.TrimSpace(input.ChannelKey)
	input.SenderNumber = strings.TrimSpace(input.SenderNumber)
	if input.ChannelKey == "" {
		return nil, fmt.Errorf("%w: channelKey is required", ErrInvalidInput)
	}
	if input.SenderNumber == "" {
		return nil, fmt.Errorf("%w: senderNumber is required", ErrInvalidInput)
	}

	existing, err := s.channels.GetChannelByKey(ctx, input.ChannelKey)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: channel key already registered", ErrConflict)
	}

	channel := &models.KakaoChannel{
		AcademyID:    input.AcademyID,
		ChannelKey:   input.ChannelKey,
		SenderNumber: input.SenderNumber,
		Active:       true,
	}
	return s.channels.CreateChannel(ctx, channel)
}

func (s *MessagingService) ListLogs(ctx context.Context, academyID *int64, limit int) ([]models.MessageLog, error) {
	return s.channels.ListMessageLogs(ctx, academyID, limit)
}
