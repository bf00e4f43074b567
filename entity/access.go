package entity

// Actions and resources understood by Allows. Row scoping (a customer only
// sees their own orders, crew only their assigned ones) is applied by the
// repositories; Allows answers the coarse role question.
const (
	ActionRead   = "read"
	ActionWrite  = "write"
	ActionDelete = "delete"

	ResourceCategory        = "category"
	ResourceMenu            = "menu"
	ResourceCart            = "cart"
	ResourceOrder           = "order"
	ResourceOrderStatus     = "order_status"
	ResourceOrderAssignment = "order_assignment"
	ResourceAdminCart       = "admin_cart"
	ResourceGroup           = "group"
)

// Allows reports whether a role may perform action on resource. It replaces
// per-request group membership lookups with a pure predicate.
func Allows(role, action, resource string) bool {
	switch role {
	case RoleManager:
		return true
	case RoleDeliveryCrew:
		switch resource {
		case ResourceCategory, ResourceMenu:
			return action == ActionRead
		case ResourceOrder:
			return action == ActionRead
		case ResourceOrderStatus:
			return true
		}
		return false
	case RoleCustomer:
		switch resource {
		case ResourceCategory, ResourceMenu:
			return action == ActionRead
		case ResourceCart:
			return true
		case ResourceOrder:
			// Customers place and read their orders; deletion is a
			// manager operation.
			return action != ActionDelete
		}
		return false
	}
	return false
}
