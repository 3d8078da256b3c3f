package api

import (
	"net/http"
	"strconv"

	"github.com/hagwonlab/academy-api/internal/models"
	"github.com/hagwonlab/academy-api/internal/service"
)

type sendMessageRequest struct {
	Kind       string `json:"kind"`
	Recipient  string `json:"recipient"`
	Body       string `json:"body"`
	ChannelKey string `json:"channelKey"`
}

type createChannelRequest struct {
	AcademyID    int64  `json:"academyId"`
	ChannelKey   string `json:"channelKey"`
	SenderNumber string `json:"senderNumber"`
}

func (s *Server) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	var req sendMessageRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid json body")
		return
	}

	sender := userFromContext(r.Context())
	log, err := s.messaging.Send(r.Context(), service.SendMessageInput{
		Kind:       req.Kind,
		Recipient:  req.Recipient,
		Body:       req.Body,
		ChannelKey: req.ChannelKey,
		AcademyID:  sender.AcademyID,
	})
	if err != nil {
		s.serviceError(w, err)
		return
	}
	writeResource(w, http.StatusOK, "message", log)
}

func (s *Server) handleListMessageLogs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var academyID *int64
	if raw := q.Get("academyId"); raw != "" {
		id, err := parseID(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request", "invalid academyId")
			return
		}
		academyID = &id
	}
	limit := 100
	if raw := q.Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "invalid_request", "invalid limit")
			return
		}
		limit = parsed
	}

	logs, err := s.messaging.ListLogs(r.Context(), academyID, limit)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	if logs == nil {
		logs = []models.MessageLog{}
	}
	writeResource(w, http.StatusOK, "logs", logs)
}

func (s *Server) handleListChannels(w http.ResponseWriter, r *http.Request) {
	var academyID *int64
	if raw := r.URL.Query().Get("academyId"); raw != "" {
		id, err := parseID(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request", "invalid academyId")
			return
		}
		academyID = &id
	}

	channels, err := s.messaging.ListChannels(r.Context(), academyID)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	if channels == nil {
		channels = []models.KakaoChannel{}
	}
	writeResource(w, http.StatusOK, "channels", channels)
}

func (s *Server) handleCreateChannel(w http.ResponseWriter, r *http.Request) {
	var req createChannelRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid json body")
		return
	}
	if req.AcademyID == 0 {
		writeError(w, http.StatusBadRequest, "invalid_request", "academyId is required")
		return
	}

	channel, err := s.messaging.CreateChannel(r.Context(), service.CreateChannelInput{
		AcademyID:    req.AcademyID,
		ChannelKey:   req.ChannelKey,
		SenderNumber: req.SenderNumber,
	})
	if err != nil {
		s.serviceError(w, err)
		return
	}
	writeResource(w, http.StatusCreated, "channel", channel)
}
