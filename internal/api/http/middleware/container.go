package middleware

import "github.com/danielgtaylor/huma/v2"

// Container collects the middlewares for one group of operations
type Container struct {
	Middlewares huma.Middlewares
}

// NewContainer creates an empty container
func NewContainer() *Container {
	return &Container{
		Middlewares: make(huma.Middlewares, 0),
	}
}

// Add appends a middleware
func (mc *Container) Add(middleware func(ctx huma.Context, next func(huma.Context))) {
	mc.Middlewares = append(mc.Middlewares, middleware)
}

// GetAllAndClear returns the collected middlewares and empties the container
func (mc *Container) GetAllAndClear() huma.Middlewares {
	result := mc.Middlewares
	mc.Middlewares = make(huma.Middlewares, 0)
	return result
}
