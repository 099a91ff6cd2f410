package globals

import "context"

// Ctx backs fire-and-forget work that outlives a single request.
var Ctx = context.Background()
