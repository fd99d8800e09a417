package rest

import (
	"github.com/gofiber/fiber/v2"

	"rest-core/internal/core"
	"rest-core/internal/model"
)

// CtxLocalsKey is the fiber locals key the auth middleware stores the
// request's *core.Ctx under.
const CtxLocalsKey = "ctx"

// FiberRequest adapts a fiber context to Request.
type FiberRequest struct {
	c *fiber.Ctx
}

func NewFiberRequest(c *fiber.Ctx) FiberRequest {
	return FiberRequest{c: c}
}

func (r FiberRequest) Param(name string) string { return r.c.Params(name) }
func (r FiberRequest) Query(name string) string { return r.c.Query(name) }
func (r FiberRequest) Body() []byte             { return r.c.Body() }

// CtxFromFiber returns the request context set by the auth middleware.
func CtxFromFiber(c *fiber.Ctx) (*core.Ctx, error) {
	rc, ok := c.Locals(CtxLocalsKey).(*core.Ctx)
	if !ok || rc == nil {
		return nil, UnauthorizedError("Missing request context")
	}
	return rc, nil
}

// Fiber turns a HandlerFunc into a fiber handler bound to the shared
// model manager.
func Fiber(mm *model.ModelManager, h HandlerFunc) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rc, err := CtxFromFiber(c)
		if err != nil {
			return err
		}
		res, err := h(c.UserContext(), rc, mm, NewFiberRequest(c))
		if err != nil {
			return err
		}
		return res.Send(c)
	}
}

// Routes binds a resource's five handlers to a collection path.
type Routes struct {
	Path   string
	Create HandlerFunc
	Get    HandlerFunc
	List   HandlerFunc
	Update HandlerFunc
	Delete HandlerFunc
}

// Routes returns the handler set bound to "/<plural>".
func (h *Handlers[E, C, U, F]) Routes() Routes {
	return Routes{
		Path:   "/" + h.desc.plural(),
		Create: h.Create,
		Get:    h.Get,
		List:   h.List,
		Update: h.Update,
		Delete: h.Delete,
	}
}

// Mount registers the collection and item routes on r.
func Mount(r fiber.Router, mm *model.ModelManager, rt Routes) {
	item := rt.Path + "/:id"

	r.Post(rt.Path, Fiber(mm, rt.Create))
	r.Get(rt.Path, Fiber(mm, rt.List))
	r.Get(item, Fiber(mm, rt.Get))
	r.Put(item, Fiber(mm, rt.Update))
	r.Delete(item, Fiber(mm, rt.Delete))
}
