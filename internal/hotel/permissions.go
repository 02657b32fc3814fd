package hotel

// Resource names match the permission map keys the dashboard consumes.
const (
	ResOrganization  = "organization"
	ResMember        = "member"
	ResInvitation    = "invitation"
	ResOrders        = "orders"
	ResMetrics       = "metrics"
	ResReservations  = "reservations"
	ResGuests        = "guests"
	ResPricingRules  = "pricingRules"
	ResPromoCodes    = "promoCodes"
	ResInventory     = "inventory"
	ResRoomTypes     = "roomTypes"
	ResActivityTypes = "activityTypes"
	ResAnalytics     = "analytics"
	ResAuditLogs     = "auditLogs"
)

// Actions.
const (
	ActionRead     = "read"
	ActionCreate   = "create"
	ActionUpdate   = "update"
	ActionDelete   = "delete"
	ActionCancel   = "cancel"
	ActionCheckin  = "checkin"
	ActionCheckout = "checkout"
	ActionInvite   = "invite"
	ActionExport   = "export"
)

// PermissionMap maps a resource to its allowed actions. The slice is
// storage economy only; membership is what matters, order does not.
type PermissionMap map[string][]string

var crud = []string{ActionRead, ActionCreate, ActionUpdate, ActionDelete}

// rolePermissions is the single source of truth for what each role may do.
var rolePermissions = map[string]PermissionMap{
	RoleOwner: {
		ResOrganization:  {ActionRead, ActionUpdate, ActionDelete},
		ResMember:        crud,
		ResInvitation:    {ActionRead, ActionCreate, ActionDelete, ActionInvite},
		ResOrders:        {ActionRead, ActionCreate, ActionUpdate, ActionDelete, ActionCancel},
		ResMetrics:       {ActionRead},
		ResReservations:  {ActionRead, ActionCreate, ActionUpdate, ActionDelete, ActionCancel, ActionCheckin, ActionCheckout},
		ResGuests:        crud,
		ResPricingRules:  crud,
		ResPromoCodes:    crud,
		ResInventory:     crud,
		ResRoomTypes:     crud,
		ResActivityTypes: crud,
		ResAnalytics:     {ActionRead, ActionExport},
		ResAuditLogs:     {ActionRead},
	},
	RoleAdmin: {
		ResOrganization:  {ActionRead, ActionUpdate},
		ResMember:        crud,
		ResInvitation:    {ActionRead, ActionCreate, ActionDelete, ActionInvite},
		ResOrders:        {ActionRead, ActionCreate, ActionUpdate, ActionDelete, ActionCancel},
		ResMetrics:       {ActionRead},
		ResReservations:  {ActionRead, ActionCreate, ActionUpdate, ActionDelete, ActionCancel, ActionCheckin, ActionCheckout},
		ResGuests:        crud,
		ResPricingRules:  crud,
		ResPromoCodes:    crud,
		ResInventory:     crud,
		ResRoomTypes:     crud,
		ResActivityTypes: crud,
		ResAnalytics:     {ActionRead, ActionExport},
		ResAuditLogs:     {ActionRead},
	},
	RoleManager: {
		ResOrganization:  {ActionRead},
		ResMember:        {ActionRead},
		ResOrders:        {ActionRead, ActionCreate, ActionUpdate, ActionCancel},
		ResMetrics:       {ActionRead},
		ResReservations:  {ActionRead, ActionCreate, ActionUpdate, ActionCancel, ActionCheckin, ActionCheckout},
		ResGuests:        {ActionRead, ActionCreate, ActionUpdate},
		ResPricingRules:  {ActionRead, ActionCreate, ActionUpdate},
		ResPromoCodes:    {ActionRead, ActionCreate, ActionUpdate},
		ResInventory:     {ActionRead, ActionUpdate},
		ResRoomTypes:     {ActionRead},
		ResActivityTypes: {ActionRead, ActionCreate, ActionUpdate},
		ResAnalytics:     {ActionRead},
	},
	RoleStaff: {
		ResOrganization: {ActionRead},
		ResOrders:       {ActionRead, ActionUpdate},
		ResReservations: {ActionRead, ActionCheckin, ActionCheckout},
		ResGuests:       {ActionRead, ActionCreate},
		ResInventory:    {ActionRead},
		ResRoomTypes:    {ActionRead},
	},
	RoleViewer: {
		ResOrganization:  {ActionRead},
		ResOrders:        {ActionRead},
		ResMetrics:       {ActionRead},
		ResReservations:  {ActionRead},
		ResGuests:        {ActionRead},
		ResInventory:     {ActionRead},
		ResRoomTypes:     {ActionRead},
		ResActivityTypes: {ActionRead},
	},
}

// PermissionsForRole returns a fresh copy of the role's permission map.
// Callers may mutate the result freely.
func PermissionsForRole(role string) PermissionMap {
	src, ok := rolePermissions[role]
	if !ok {
		return PermissionMap{}
	}
	out := make(PermissionMap, len(src))
	for resource, actions := range src {
		out[resource] = append([]string(nil), actions...)
	}
	return out
}

// Allowed reports whether the permission map grants the action on the
// resource. A resource absent from the map means no actions are allowed.
func Allowed(m PermissionMap, resource, action string) bool {
	if m == nil {
		return false
	}
	for _, a := range m[resource] {
		if a == action {
			return true
		}
	}
	return false
}
