package types

// Create input: every descriptive field required, capacity optional but at
// least 1 when present. There is deliberately no id or creatorId field; the
// creator is always the session identity.
type CreateGroupReq struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Leader      string  `json:"leader" validate:"required"`
	Schedule    string  `json:"schedule" validate:"required"`
	Location    string  `json:"location" validate:"required"`
	Capacity    *int    `json:"capacity" validate:"omitnil,min=1"`
	ImageURL    *string `json:"imageUrl"`
}

// Update input: every field optional, absent fields untouched. Present text
// fields must stay non-empty.
type UpdateGroupReq struct {
	Name        *string `json:"name" validate:"omitnil,min=1"`
	Description *string `json:"description" validate:"omitnil,min=1"`
	Leader      *string `json:"leader" validate:"omitnil,min=1"`
	Schedule    *string `json:"schedule" validate:"omitnil,min=1"`
	Location    *string `json:"location" validate:"omitnil,min=1"`
	Capacity    *int    `json:"capacity" validate:"omitnil,min=1"`
	ImageURL    *string `json:"imageUrl"`
}

// Values maps the present fields to their columns for a partial update.
func (r UpdateGroupReq) Values() map[string]any {
	values := make(map[string]any)
	if r.Name != nil {
		values["name"] = *r.Name
	}
	if r.Description != nil {
		values["description"] = *r.Description
	}
	if r.Leader != nil {
		values["leader"] = *r.Leader
	}
	if r.Schedule != nil {
		values["schedule"] = *r.Schedule
	}
	if r.Location != nil {
		values["location"] = *r.Location
	}
	if r.Capacity != nil {
		values["capacity"] = *r.Capacity
	}
	if r.ImageURL != nil {
		values["image_url"] = *r.ImageURL
	}
	return values
}

type CreateJoinRequestReq struct {
	Email string `json:"email" validate:"required,email"`
}

type RegisterReq struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginReq struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResp struct {
	Token string `json:"token"`
}

type UserInfoResp struct {
	Id       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
