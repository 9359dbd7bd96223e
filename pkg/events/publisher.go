// Package events broadcasts task progress over PostgreSQL NOTIFY so other
// replicas and listeners can observe running tasks without polling.
package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/creatorloop/looper/ent/task"
)

// EventTypeTaskProgress is the type field of every progress payload.
const EventTypeTaskProgress = "task.progress"

// TaskChannel returns the NOTIFY channel for a task.
func TaskChannel(taskID string) string {
	return "task:" + taskID
}

// TaskProgressPayload is broadcast on each progress update and on terminal
// status. Transient: listeners that miss it can read the task row.
type TaskProgressPayload struct {
	Type       string      `json:"type"`
	TaskID     string      `json:"task_id"`
	CampaignID string      `json:"campaign_id,omitempty"`
	State      task.Status `json:"state"`
	Progress   int         `json:"progress"`
	Message    string      `json:"message,omitempty"`
	Timestamp  string      `json:"timestamp"`
}

// Publisher broadcasts task progress events via pg_notify. Progress is
// NOTIFY-only; durable state lives on the task row itself.
type Publisher struct {
	db *sql.DB
}

// NewPublisher creates a new Publisher.
// The db parameter should be the *sql.DB from database.Client.DB().
func NewPublisher(db *sql.DB) *Publisher {
	return &Publisher{db: db}
}

// PublishTaskProgress broadcasts a task.progress event on the task channel.
func (p *Publisher) PublishTaskProgress(ctx context.Context, payload TaskProgressPayload) error {
	payload.Type = EventTypeTaskProgress
	if payload.Timestamp == "" {
		payload.Timestamp = time.Now().Format(time.RFC3339Nano)
	}
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal TaskProgressPayload: %w", err)
	}
	return p.notifyOnly(ctx, TaskChannel(payload.TaskID), payloadJSON)
}

// notifyOnly broadcasts a pre-marshaled event via NOTIFY without persisting to DB.
func (p *Publisher) notifyOnly(ctx context.Context, channel string, payloadJSON []byte) error {
	notifyPayload, err := truncateIfNeeded(string(payloadJSON))
	if err != nil {
		return err
	}
	_, err = p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload)
	if err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// truncateIfNeeded returns the payload string as-is if it fits within
// PostgreSQL's 8000-byte NOTIFY limit, otherwise returns a minimal
// truncation envelope with only routing fields.
func truncateIfNeeded(payloadStr string) (string, error) {
	if len(payloadStr) <= 7900 {
		return payloadStr, nil
	}

	var routing struct {
		Type   string `json:"type"`
		TaskID string `json:"task_id"`
	}
	if err := json.Unmarshal([]byte(payloadStr), &routing); err != nil {
		return "", fmt.Errorf("failed to extract routing fields for truncation: %w", err)
	}

	truncBytes, err := json.Marshal(map[string]any{
		"type":      routing.Type,
		"task_id":   routing.TaskID,
		"truncated": true,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated payload: %w", err)
	}
	return string(truncBytes), nil
}
