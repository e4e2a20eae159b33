// Package http exposes the order lifecycle and catalog read surface over
// REST. Handlers translate between the wire shapes and the application's
// commands and queries; all domain rules live below this layer.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"pharmadelivery/internal/core/application/usecases/commands"
	"pharmadelivery/internal/core/application/usecases/queries"
	"pharmadelivery/internal/core/domain/model/kernel"
	"pharmadelivery/internal/core/domain/model/order"
	"pharmadelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	logger *zap.Logger

	// Command handlers
	createOrderHandler  commands.CreateOrderCommandHandler
	acceptOrderHandler  commands.AcceptOrderCommandHandler
	deliverOrderHandler commands.DeliverOrderCommandHandler

	// Query handlers
	getOrderHandler             queries.GetOrderQueryHandler
	getCustomerOrdersHandler    queries.GetCustomerOrdersQueryHandler
	getPendingOrdersHandler     queries.GetPendingOrdersQueryHandler
	getRiderAcceptedHandler     queries.GetRiderAcceptedOrdersQueryHandler
	getRiderOrderHistoryHandler queries.GetRiderOrderHistoryQueryHandler
	getPharmacyDrugsHandler     queries.GetPharmacyDrugsQueryHandler
	getPharmacyServicesHandler  queries.GetPharmacyServicesQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	logger *zap.Logger,
	createOrderHandler commands.CreateOrderCommandHandler,
	acceptOrderHandler commands.AcceptOrderCommandHandler,
	deliverOrderHandler commands.DeliverOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler,
	getPendingOrdersHandler queries.GetPendingOrdersQueryHandler,
	getRiderAcceptedHandler queries.GetRiderAcceptedOrdersQueryHandler,
	getRiderOrderHistoryHandler queries.GetRiderOrderHistoryQueryHandler,
	getPharmacyDrugsHandler queries.GetPharmacyDrugsQueryHandler,
	getPharmacyServicesHandler queries.GetPharmacyServicesQueryHandler,
) *Server {
	return &Server{
		logger:                      logger,
		createOrderHandler:          createOrderHandler,
		acceptOrderHandler:          acceptOrderHandler,
		deliverOrderHandler:         deliverOrderHandler,
		getOrderHandler:             getOrderHandler,
		getCustomerOrdersHandler:    getCustomerOrdersHandler,
		getPendingOrdersHandler:     getPendingOrdersHandler,
		getRiderAcceptedHandler:     getRiderAcceptedHandler,
		getRiderOrderHistoryHandler: getRiderOrderHistoryHandler,
		getPharmacyDrugsHandler:     getPharmacyDrugsHandler,
		getPharmacyServicesHandler:  getPharmacyServicesHandler,
	}
}

// RegisterRoutes wires the server's handlers into the echo instance.
// Order routes require authentication; the pharmacy catalog is public.
func (s *Server) RegisterRoutes(e *echo.Echo, jwtSecret string) {
	e.Validator = NewCustomValidator()

	e.GET("/health", s.Health)

	medOrders := e.Group("/med-orders", AuthMiddleware(jwtSecret))
	medOrders.POST("", s.CreateMedOrder)
	medOrders.GET("", s.GetMedOrders)

	riders := e.Group("/riders", AuthMiddleware(jwtSecret))
	riders.GET("/pending-orders", s.GetPendingOrders)
	riders.POST("/orders/:orderId/accept", s.AcceptOrder)
	riders.PATCH("/orders/:orderId/deliver", s.DeliverOrder)
	riders.GET("/accepted-orders", s.GetAcceptedOrders)
	riders.GET("/order-history", s.GetOrderHistory)

	pharmacies := e.Group("/pharmacies")
	pharmacies.GET("/:pharmacyId/drugs", s.GetPharmacyDrugs)
	pharmacies.GET("/:pharmacyId/services", s.GetPharmacyServices)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateMedOrder handles POST /med-orders - places a new order for the
// authenticated customer.
func (s *Server) CreateMedOrder(ctx echo.Context) error {
	identity, ok := identityFromContext(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, ErrorResponse{Message: "authentication required"})
	}

	var request CreateMedOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
	}
	if err := ctx.Validate(&request); err != nil {
		return err
	}

	cmd, err := buildCreateOrderCommand(identity.UserID, request)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return ctx.JSON(orderErrorStatus(err), ErrorResponse{Message: err.Error()})
	}

	return s.respondWithOrder(ctx, http.StatusCreated, cmd.OrderID())
}

// GetMedOrders handles GET /med-orders - the authenticated customer's
// orders, newest first.
func (s *Server) GetMedOrders(ctx echo.Context) error {
	identity, ok := identityFromContext(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, ErrorResponse{Message: "authentication required"})
	}

	query, err := queries.NewGetCustomerOrdersQuery(identity.UserID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
	}

	orders, err := s.getCustomerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		s.logger.Error("failed to retrieve customer orders", zap.Error(err))
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: "failed to retrieve orders"})
	}

	return ctx.JSON(http.StatusOK, toMedOrderResponses(orders))
}

// GetPendingOrders handles GET /riders/pending-orders - the shared pool of
// unclaimed orders. Only riders may look at the pool.
func (s *Server) GetPendingOrders(ctx echo.Context) error {
	identity, ok := identityFromContext(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, ErrorResponse{Message: "authentication required"})
	}

	if identity.Role != commands.RoleRider {
		return ctx.JSON(http.StatusForbidden, ErrorResponse{
			Message: "Access denied. Only riders can view pending orders.",
		})
	}

	orders, err := s.getPendingOrdersHandler.Handle(ctx.Request().Context(),
		queries.NewGetPendingOrdersQuery())
	if err != nil {
		s.logger.Error("failed to retrieve pending orders", zap.Error(err))
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: "failed to retrieve orders"})
	}

	return ctx.JSON(http.StatusOK, toMedOrderResponses(orders))
}

// AcceptOrder handles POST /riders/orders/:orderId/accept - claims a
// pending order for the authenticated rider.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	identity, ok := identityFromContext(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, ErrorResponse{Message: "authentication required"})
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
	}

	cmd, err := commands.NewAcceptOrderCommand(orderID, identity.UserID, identity.Role)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
	}

	if err = s.acceptOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return ctx.JSON(orderErrorStatus(err), ErrorResponse{Message: err.Error()})
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID)
}

// DeliverOrder handles PATCH /riders/orders/:orderId/deliver - the assigned
// rider marks an order delivered.
func (s *Server) DeliverOrder(ctx echo.Context) error {
	identity, ok := identityFromContext(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, ErrorResponse{Message: "authentication required"})
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
	}

	cmd, err := commands.NewDeliverOrderCommand(orderID, identity.UserID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
	}

	if err = s.deliverOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return ctx.JSON(orderErrorStatus(err), ErrorResponse{Message: err.Error()})
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID)
}

// GetAcceptedOrders handles GET /riders/accepted-orders - the orders the
// authenticated rider currently holds.
func (s *Server) GetAcceptedOrders(ctx echo.Context) error {
	identity, ok := identityFromContext(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, ErrorResponse{Message: "authentication required"})
	}

	query, err := queries.NewGetRiderAcceptedOrdersQuery(identity.UserID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
	}

	orders, err := s.getRiderAcceptedHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		s.logger.Error("failed to retrieve accepted orders", zap.Error(err))
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: "failed to retrieve orders"})
	}

	return ctx.JSON(http.StatusOK, toMedOrderResponses(orders))
}

// GetOrderHistory handles GET /riders/order-history - the orders the
// authenticated rider has delivered.
func (s *Server) GetOrderHistory(ctx echo.Context) error {
	identity, ok := identityFromContext(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, ErrorResponse{Message: "authentication required"})
	}

	query, err := queries.NewGetRiderOrderHistoryQuery(identity.UserID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
	}

	orders, err := s.getRiderOrderHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		s.logger.Error("failed to retrieve order history", zap.Error(err))
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: "failed to retrieve orders"})
	}

	return ctx.JSON(http.StatusOK, toMedOrderResponses(orders))
}

// GetPharmacyDrugs handles GET /pharmacies/:pharmacyId/drugs - a paginated
// listing of the pharmacy's available drugs.
func (s *Server) GetPharmacyDrugs(ctx echo.Context) error {
	pharmacyID, err := kernel.UUIDFromString(ctx.Param("pharmacyId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
	}

	page, err := intQueryParam(ctx, "page")
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid page"})
	}
	limit, err := intQueryParam(ctx, "limit")
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid limit"})
	}

	query, err := queries.NewGetPharmacyDrugsQuery(pharmacyID, page, limit,
		ctx.QueryParam("searchQuery"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
	}

	result, err := s.getPharmacyDrugsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		s.logger.Error("failed to retrieve pharmacy drugs", zap.Error(err))
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: "failed to retrieve drugs"})
	}

	drugs := make([]PharmacyDrugBody, len(result.Drugs))
	for i, drug := range result.Drugs {
		drugs[i] = PharmacyDrugBody{
			DrugID:      drug.DrugID.String(),
			Name:        drug.Name,
			Description: drug.Description,
			Category:    drug.Category,
			Price:       drug.Price,
		}
	}

	return ctx.JSON(http.StatusOK, PharmacyDrugsBody{
		Drugs: drugs,
		Pagination: PaginationBody{
			Page:       result.Pagination.Page,
			Limit:      result.Pagination.Limit,
			Total:      result.Pagination.Total,
			TotalPages: result.Pagination.TotalPages,
		},
	})
}

// GetPharmacyServices handles GET /pharmacies/:pharmacyId/services - the
// pharmacy's available services.
func (s *Server) GetPharmacyServices(ctx echo.Context) error {
	pharmacyID, err := kernel.UUIDFromString(ctx.Param("pharmacyId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
	}

	query, err := queries.NewGetPharmacyServicesQuery(pharmacyID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
	}

	result, err := s.getPharmacyServicesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		s.logger.Error("failed to retrieve pharmacy services", zap.Error(err))
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: "failed to retrieve services"})
	}

	services := make([]PharmacyServiceBody, len(result))
	for i, service := range result {
		services[i] = PharmacyServiceBody{
			ServiceID:   service.ServiceID.String(),
			Name:        service.Name,
			Description: service.Description,
			Price:       service.Price,
		}
	}

	return ctx.JSON(http.StatusOK, services)
}

// respondWithOrder loads the hydrated projection of one order and writes it
// with the given status.
func (s *Server) respondWithOrder(ctx echo.Context, status int, orderID kernel.UUID) error {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
	}

	orderResp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, ErrorResponse{Message: err.Error()})
		}
		s.logger.Error("failed to retrieve order", zap.Error(err))
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: "failed to retrieve order"})
	}

	return ctx.JSON(status, toMedOrderResponse(orderResp))
}

// orderErrorStatus maps lifecycle command failures onto HTTP statuses:
// a missing order is 404, everything else (validation, transition, role and
// ownership guards) is 400.
func orderErrorStatus(err error) int {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}

func intQueryParam(ctx echo.Context, name string) (int, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

func buildCreateOrderCommand(customerID kernel.UUID, request CreateMedOrderRequest) (commands.CreateOrderCommand, error) {
	pharmacyID, err := kernel.UUIDFromString(request.PharmacyID)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	drugIDs := make([]kernel.UUID, 0, len(request.Drugs))
	for _, ref := range request.Drugs {
		drugID, drugErr := kernel.UUIDFromString(ref.DrugID)
		if drugErr != nil {
			return commands.CreateOrderCommand{}, drugErr
		}
		drugIDs = append(drugIDs, drugID)
	}

	services := make([]commands.ServiceRequest, 0, len(request.Services))
	for _, line := range request.Services {
		serviceID, serviceErr := kernel.UUIDFromString(line.ServiceID)
		if serviceErr != nil {
			return commands.CreateOrderCommand{}, serviceErr
		}
		services = append(services, commands.ServiceRequest{
			ServiceID: serviceID,
			Quantity:  line.Quantity,
		})
	}

	var paymentID *kernel.UUID
	if request.PaymentID != nil {
		pID, paymentErr := kernel.UUIDFromString(*request.PaymentID)
		if paymentErr != nil {
			return commands.CreateOrderCommand{}, paymentErr
		}
		paymentID = &pID
	}

	return commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		customerID,
		pharmacyID,
		order.Delivery{
			Stage:       request.Stage,
			Location:    request.Location,
			Eta:         request.Eta,
			TotalAmount: request.TotalAmount,
			DeliveryFee: request.DeliveryFee,
		},
		drugIDs,
		services,
		paymentID,
	)
}
