package models

import "time"

// StagePayload is the per-stage block inside a dispatch payload.
type StagePayload struct {
	ID               int64     `json:"id"`
	Content          string    `json:"content"`
	RawScheduledTime time.Time `json:"rawScheduledTime"`
	ScheduledTime    time.Time `json:"scheduledTime"`
}

// ChatwootData identifies the contact and conversation on the platform.
type ChatwootData struct {
	AccountID      int64  `json:"accountId"`
	ContactID      int64  `json:"contactId"`
	ConversationID int64  `json:"conversationId"`
	ContactName    string `json:"contactName"`
	PhoneNumber    string `json:"phoneNumber"`
}

// InstanceData carries the channel credentials the transport needs.
type InstanceData struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	APIURL string `json:"apiUrl"`
	Token  string `json:"token"`
}

// SequenceData describes the owning sequence and the stage to send. Stage
// is keyed by the configured stage key (default "stg1").
type SequenceData struct {
	ID    int64                   `json:"id"`
	Name  string                  `json:"name"`
	Stage map[string]StagePayload `json:"stage"`
}

// DispatchMessage is one transport-ready payload returned by a dispatch
// sweep.
type DispatchMessage struct {
	ID           int64        `json:"id"`
	ChatwootData ChatwootData `json:"chatwootData"`
	InstanceData InstanceData `json:"instanceData"`
	SequenceData SequenceData `json:"sequenceData"`
}

// TransportRequest is the body posted to the outbound transport webhook by
// the built-in delivery worker.
type TransportRequest struct {
	MessageID    int64        `json:"messageId"`
	ChatwootData ChatwootData `json:"chatwootData"`
	InstanceData InstanceData `json:"instanceData"`
	SequenceData SequenceData `json:"sequenceData"`
}

// TransportResponse is the transport webhook's reply.
type TransportResponse struct {
	Message           string `json:"message"`
	ExternalMessageID string `json:"messageId"`
}
