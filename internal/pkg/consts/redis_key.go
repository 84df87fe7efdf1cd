package consts

// Chaves do Redis
const (
	TokenBlacklistKey = "auth:blacklist:"
	PublicPostsKey    = "cache:posts:"
	PublicTipsKey     = "cache:tips:aprovadas"
	GenerationLockKey = "lock:generation"
)
