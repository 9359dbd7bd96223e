package models

// TaskStatus is the polling payload returned by GET /tasks/{task_id}.
// Field names and the redirect_url rule are part of the client contract.
type TaskStatus struct {
	TaskID      string                 `json:"task_id"`
	State       string                 `json:"state"`
	Progress    int                    `json:"progress"`
	Message     string                 `json:"message"`
	Result      map[string]interface{} `json:"result"`
	Error       *string                `json:"error"`
	CampaignID  *string                `json:"campaign_id"`
	RedirectURL string                 `json:"redirect_url,omitempty"`
}
