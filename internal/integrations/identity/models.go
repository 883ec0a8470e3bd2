package identity

// Role роль принципала в системе
type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleAdmin      Role = "admin"
	RoleRoom       Role = "room"
	RoleRequester  Role = "requester"
)

// Principal аутентифицированный субъект, полученный от identity-сервиса.
// Каждая операция ядра принимает принципала явным аргументом - сервис
// не хранит сессионного состояния.
type Principal struct {
	Role          Role   `json:"role"`
	RoomID        *int64 `json:"room_id,omitempty"`
	RequesterID   *int64 `json:"requester_id,omitempty"`
	AdminUsername string `json:"admin_username,omitempty"`
}

// IsRoom возвращает true, если принципал - identity переговорной с данным ID
func (p *Principal) IsRoom(roomID int64) bool {
	return p.Role == RoleRoom && p.RoomID != nil && *p.RoomID == roomID
}

// IsRequester возвращает true, если принципал - пользователь с данным ID
func (p *Principal) IsRequester(requesterID int64) bool {
	return p.Role == RoleRequester && p.RequesterID != nil && *p.RequesterID == requesterID
}

// ErrorResponse модель ошибки от identity-сервиса
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
