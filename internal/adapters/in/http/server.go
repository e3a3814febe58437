// Package http exposes the pizzeria API over echo. It binds and validates
// request payloads, translates them into commands and queries, and maps
// domain errors onto HTTP status codes.
package http

import (
	"errors"
	"net/http"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// CustomValidator plugs go-playground/validator into echo's binding flow.
type CustomValidator struct {
	validator *validator.Validate
}

// NewCustomValidator creates the request validator for the server.
func NewCustomValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler commands.CreateOrderCommandHandler
	updateOrderHandler commands.UpdateOrderCommandHandler
	addPizzaHandler    commands.AddPizzaCommandHandler

	getOrderHandler        queries.GetOrderQueryHandler
	getAllOrdersHandler    queries.GetAllOrdersQueryHandler
	getAllCustomersHandler queries.GetAllCustomersQueryHandler
	getAllPizzasHandler    queries.GetAllPizzasQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	addPizzaHandler commands.AddPizzaCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getAllCustomersHandler queries.GetAllCustomersQueryHandler,
	getAllPizzasHandler queries.GetAllPizzasQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:     createOrderHandler,
		updateOrderHandler:     updateOrderHandler,
		addPizzaHandler:        addPizzaHandler,
		getOrderHandler:        getOrderHandler,
		getAllOrdersHandler:    getAllOrdersHandler,
		getAllCustomersHandler: getAllCustomersHandler,
		getAllPizzasHandler:    getAllPizzasHandler,
	}
}

// RegisterRoutes wires the API routes, the health endpoint and the swagger
// UI onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Validator = NewCustomValidator()

	e.GET("/health", s.Health)
	e.GET("/api/*", echoSwagger.WrapHandler)

	e.GET("/orders", s.GetOrders)
	e.POST("/orders", s.CreateOrder)
	e.GET("/orders/:id", s.GetOrder)
	e.PATCH("/orders/:id", s.UpdateOrder)

	e.GET("/customers", s.GetCustomers)

	e.GET("/pizzas", s.GetPizzas)
	e.POST("/pizzas", s.CreatePizza)
}

// Health reports process liveness.
//
//	@Summary	Health check
//	@Tags		System
//	@Produce	plain
//	@Success	200	{string}	string	"Healthy"
//	@Router		/health [get]
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// GetOrders handles GET /orders - a filterable order listing.
//
//	@Summary	List orders
//	@Tags		Order
//	@Produce	json
//	@Param		status		query		string	false	"Exact status filter"	Enums(NEW, PREPARING, DELIVERING, DELIVERED)
//	@Param		customerId	query		string	false	"Customer id filter"
//	@Success	200			{array}		OrderResponse
//	@Failure	400			{object}	ErrorResponse
//	@Router		/orders [get]
func (s *Server) GetOrders(ctx echo.Context) error {
	var statusFilter *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := order.StatusFromString(raw)
		if err != nil {
			return badRequest(ctx, err)
		}
		statusFilter = &status
	}

	var customerFilter *kernel.UUID
	if raw := ctx.QueryParam("customerId"); raw != "" {
		customerID, err := kernel.UUIDFromString(raw)
		if err != nil {
			return badRequest(ctx, err)
		}
		customerFilter = &customerID
	}

	query, err := queries.NewGetAllOrdersQuery(statusFilter, customerFilter)
	if err != nil {
		return badRequest(ctx, err)
	}

	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, orderResponseFromQuery(o))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /orders/:id - a single order with its line items.
//
//	@Summary	Get one order
//	@Tags		Order
//	@Produce	json
//	@Param		id	path		string	true	"Order id"
//	@Success	200	{object}	OrderDetailsResponse
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/orders/{id} [get]
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, err)
	}

	orderView, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderDetailsFromQuery(orderView))
}

// CreateOrder handles POST /orders - creates an order with its customer and
// line items in one transaction.
//
//	@Summary	Create an order
//	@Tags		Order
//	@Accept		json
//	@Produce	json
//	@Param		orderData	body		CreateOrderRequest	true	"Order data"
//	@Success	200			{object}	OrderResponse
//	@Failure	400			{object}	ErrorResponse
//	@Router		/orders [post]
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	cust, err := customerFromRequest(req.Customer)
	if err != nil {
		return badRequest(ctx, err)
	}

	selections, err := selectionsFromRequest(req.PizzaItems)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), cust, selections, req.Delivery)
	if err != nil {
		return badRequest(ctx, err)
	}

	aggregate, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromAggregate(aggregate))
}

// UpdateOrder handles PATCH /orders/:id - a status move, a full line item
// replacement, or both.
//
//	@Summary	Update an order
//	@Tags		Order
//	@Accept		json
//	@Produce	json
//	@Param		id			path		string				true	"Order id"
//	@Param		updateData	body		UpdateOrderRequest	true	"Update data"
//	@Success	200			{object}	OrderResponse
//	@Failure	400			{object}	ErrorResponse
//	@Failure	404			{object}	ErrorResponse
//	@Router		/orders/{id} [patch]
func (s *Server) UpdateOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var req UpdateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}
	if err = ctx.Validate(&req); err != nil {
		return err
	}

	var statusFilter *order.Status
	if req.Status != nil {
		status, statusErr := order.StatusFromString(*req.Status)
		if statusErr != nil {
			return badRequest(ctx, statusErr)
		}
		statusFilter = &status
	}

	selections, err := selectionsFromRequest(req.PizzaItems)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, statusFilter, selections)
	if err != nil {
		return badRequest(ctx, err)
	}

	aggregate, err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromAggregate(aggregate))
}

// GetCustomers handles GET /customers - all customers with current orders.
//
//	@Summary	List customers
//	@Tags		Customer
//	@Produce	json
//	@Success	200	{array}		CustomerResponse
//	@Failure	500	{object}	ErrorResponse
//	@Router		/customers [get]
func (s *Server) GetCustomers(ctx echo.Context) error {
	query := queries.NewGetAllCustomersQuery()

	customers, err := s.getAllCustomersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]CustomerResponse, 0, len(customers))
	for _, cust := range customers {
		response = append(response, customerResponseFromQuery(cust))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetPizzas handles GET /pizzas - the catalog as a list of names.
//
//	@Summary	List pizza types
//	@Tags		Pizza
//	@Produce	json
//	@Success	200	{array}		string
//	@Failure	500	{object}	ErrorResponse
//	@Router		/pizzas [get]
func (s *Server) GetPizzas(ctx echo.Context) error {
	query := queries.NewGetAllPizzasQuery()

	pizzas, err := s.getAllPizzasHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	names := make([]string, 0, len(pizzas))
	for _, p := range pizzas {
		names = append(names, p.Name)
	}

	return ctx.JSON(http.StatusOK, names)
}

// CreatePizza handles POST /pizzas - adds a catalog entry.
//
//	@Summary	Create a pizza type
//	@Tags		Pizza
//	@Accept		json
//	@Produce	json
//	@Param		pizzaData	body		CreatePizzaRequest	true	"Pizza data"
//	@Success	200			{object}	PizzaResponse
//	@Failure	400			{object}	ErrorResponse
//	@Router		/pizzas [post]
func (s *Server) CreatePizza(ctx echo.Context) error {
	var req CreatePizzaRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	cmd, err := commands.NewAddPizzaCommand(kernel.NewUUID(), req.Name)
	if err != nil {
		return badRequest(ctx, err)
	}

	aggregate, err := s.addPizzaHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, PizzaResponse{
		ID:   aggregate.ID().String(),
		Name: aggregate.Name(),
	})
}

func badRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: err.Error(),
	})
}

// respondError maps use case errors onto HTTP status codes: missing objects
// turn into 404, business rule violations into 400, everything else 500.
func respondError(ctx echo.Context, err error) error {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	}

	if isBusinessRuleViolation(err) {
		return badRequest(ctx, err)
	}

	return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    http.StatusInternalServerError,
		Message: err.Error(),
	})
}

func isBusinessRuleViolation(err error) bool {
	return errors.Is(err, order.ErrOrderIsDelivered) ||
		errors.Is(err, commands.ErrInvalidPizzaSelection) ||
		errors.Is(err, commands.ErrNoPizzaSelections) ||
		errors.Is(err, commands.ErrNoUpdateData) ||
		errors.Is(err, commands.ErrPizzaAlreadyExists) ||
		errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, errs.ErrValueIsRequired)
}
