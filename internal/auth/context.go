package auth

// ContextUserKey is the gin context key under which the middleware
// stores the authenticated *model.User.
const ContextUserKey = "currentUser"
