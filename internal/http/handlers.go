package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/rocpay1889/baba-shoping/internal/domain"
	"github.com/rocpay1889/baba-shoping/internal/gate"
	"github.com/rocpay1889/baba-shoping/internal/lifecycle"
	"github.com/rocpay1889/baba-shoping/internal/logging"
	"github.com/rocpay1889/baba-shoping/internal/metrics"
	"github.com/rocpay1889/baba-shoping/internal/repository"
	"github.com/rocpay1889/baba-shoping/internal/service"
)

// Services зависимости HTTP-слоя
type Services struct {
	Products *service.ProductService
	Cart     *service.CartService
	Orders   *service.OrderService
	Payments *service.PaymentService
	Tracking *service.TrackingService
	Identity *service.IdentityService
	Metrics  *metrics.Metrics
	Log      *zap.Logger
}

type Server struct {
	engine *gin.Engine
	svc    Services
	gate   *gate.Gate
}

func NewServer(svc Services) *Server {
	if svc.Log == nil {
		svc.Log = zap.NewNop()
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), logging.GinLogger(svc.Log))
	s := &Server{engine: r, svc: svc, gate: gate.New(svc.Identity, svc.Cart)}
	s.registerRoutes()
	return s
}

func (s *Server) Engine() *gin.Engine { return s.engine }

func (s *Server) registerRoutes() {
	// Swagger UI
	s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if s.svc.Metrics != nil {
		s.engine.GET("/metrics", gin.WrapH(s.svc.Metrics.Handler()))
	}

	v1 := s.engine.Group("/api/v1")
	{
		catalog := v1.Group("/catalog")
		catalog.GET("", s.listBundles)
		catalog.GET(":id", s.getBundle)

		auth := v1.Group("/auth")
		auth.GET("/captcha", s.captcha)
		auth.POST("/login", s.login)
		auth.POST("/signup", s.signup)
		auth.POST("/logout", s.logout)
		auth.GET("/me", s.me)

		v1.GET("/cart", s.getCart)
		v1.PUT("/cart", s.putCart)
		v1.DELETE("/cart", s.clearCart)

		v1.POST("/checkout", s.requireRoute(gate.RouteCheckout), s.checkout)
		v1.GET("/payment", s.requireRoute(gate.RoutePayment), s.paymentSummary)
		v1.POST("/payment", s.requireRoute(gate.RoutePayment), s.completePayment)
		v1.GET("/order-status", s.requireRoute(gate.RouteOrderStatus), s.orderStatus)
	}
}

// Catalog handlers

// @Summary List bundles
// @Tags catalog
// @Produce json
// @Param q query string false "Name contains"
// @Param tag query string false "Tag"
// @Param min_price query int false "Min price"
// @Param max_price query int false "Max price"
// @Success 200 {array} domain.ProductBundle
// @Failure 400 {object} map[string]string
// @Router /catalog [get]
func (s *Server) listBundles(c *gin.Context) {
	var f repository.ProductFilter
	if q := c.Query("q"); q != "" {
		f.NameSubstring = q
	}
	f.Tag = c.Query("tag")
	if v := c.Query("min_price"); v != "" {
		if x, err := strconv.ParseInt(v, 10, 64); err == nil {
			f.MinPrice = &x
		}
	}
	if v := c.Query("max_price"); v != "" {
		if x, err := strconv.ParseInt(v, 10, 64); err == nil {
			f.MaxPrice = &x
		}
	}
	list, err := s.svc.Products.List(c, f)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary Get bundle by id
// @Tags catalog
// @Produce json
// @Param id path int true "Bundle ID"
// @Success 200 {object} domain.ProductBundle
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /catalog/{id} [get]
func (s *Server) getBundle(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	b, err := s.svc.Products.GetByID(c, id)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// Auth handlers

type captchaResp struct {
	Enabled   bool   `json:"enabled"`
	Challenge string `json:"challenge,omitempty"`
}

// @Summary New captcha challenge
// @Tags auth
// @Produce json
// @Success 200 {object} captchaResp
// @Router /auth/captcha [get]
func (s *Server) captcha(c *gin.Context) {
	if !s.svc.Identity.CaptchaEnabled() {
		c.JSON(http.StatusOK, captchaResp{})
		return
	}
	c.JSON(http.StatusOK, captchaResp{Enabled: true, Challenge: s.svc.Identity.RefreshCaptcha()})
}

// @Summary Log in
// @Tags auth
// @Accept json
// @Produce json
// @Param input body service.LoginRequest true "Credentials"
// @Success 200 {object} domain.Identity
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /auth/login [post]
func (s *Server) login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	id, err := s.svc.Identity.Login(c, req)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, id)
}

// @Summary Sign up
// @Tags auth
// @Accept json
// @Produce json
// @Param input body service.SignupRequest true "Profile"
// @Success 201 {object} domain.Identity
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /auth/signup [post]
func (s *Server) signup(c *gin.Context) {
	var req service.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	id, err := s.svc.Identity.Signup(c, req)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, id)
}

// @Summary Log out
// @Tags auth
// @Success 204
// @Router /auth/logout [post]
func (s *Server) logout(c *gin.Context) {
	if err := s.svc.Identity.Logout(c); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Current user
// @Tags auth
// @Produce json
// @Success 200 {object} domain.Identity
// @Failure 401 {object} map[string]string
// @Router /auth/me [get]
func (s *Server) me(c *gin.Context) {
	id, err := s.svc.Identity.CurrentUser(c)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, id)
}

// Cart handlers

type cartResp struct {
	Empty bool             `json:"empty"`
	Item  *domain.CartItem `json:"item,omitempty"`
}

// @Summary Current cart
// @Tags cart
// @Produce json
// @Success 200 {object} cartResp
// @Router /cart [get]
func (s *Server) getCart(c *gin.Context) {
	item := s.svc.Cart.Current()
	c.JSON(http.StatusOK, cartResp{Empty: item == nil, Item: item})
}

type putCartReq struct {
	BundleID int64                `json:"bundle_id"`
	Size     domain.SizeSelection `json:"selected_size"`
}

// @Summary Put a bundle in the cart
// @Description Replaces whatever the cart held before.
// @Tags cart
// @Accept json
// @Produce json
// @Param input body putCartReq true "Selection"
// @Success 200 {object} domain.CartItem
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cart [put]
func (s *Server) putCart(c *gin.Context) {
	var req putCartReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	item, err := s.svc.Cart.AddBundle(c, req.BundleID, req.Size)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// @Summary Empty the cart
// @Tags cart
// @Success 204
// @Router /cart [delete]
func (s *Server) clearCart(c *gin.Context) {
	s.svc.Cart.Clear()
	c.Status(http.StatusNoContent)
}

// Checkout and payment handlers

// @Summary Place the order
// @Tags checkout
// @Accept json
// @Produce json
// @Param input body domain.CheckoutForm true "Shipping details"
// @Success 201 {object} domain.OrderRecord
// @Failure 303 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /checkout [post]
func (s *Server) checkout(c *gin.Context) {
	var form domain.CheckoutForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	rec, err := s.svc.Orders.CreateFromCheckout(c, form, s.svc.Cart.Current())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

type paymentSummaryResp struct {
	Cart  *domain.CartItem    `json:"cart"`
	Order *domain.OrderRecord `json:"order,omitempty"`
}

// @Summary Payment page summary
// @Tags payment
// @Produce json
// @Success 200 {object} paymentSummaryResp
// @Failure 303 {object} map[string]string
// @Router /payment [get]
func (s *Server) paymentSummary(c *gin.Context) {
	resp := paymentSummaryResp{Cart: s.svc.Cart.Current()}
	o, err := s.svc.Orders.Read(c)
	switch {
	case err == nil:
		resp.Order = o
	case !errors.Is(err, repository.ErrNotFound):
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

type completePaymentReq struct {
	Screenshot string `json:"screenshot"`
}

type completePaymentResp struct {
	Payment  *domain.PaymentConfirmation `json:"payment"`
	Redirect string                      `json:"redirect"`
}

// @Summary Complete the mock payment
// @Description Accepts JSON or multipart with an optional "screenshot" file; only the file name is kept.
// @Tags payment
// @Accept json,mpfd
// @Produce json
// @Param input body completePaymentReq false "Screenshot reference"
// @Success 200 {object} completePaymentResp
// @Failure 303 {object} map[string]string
// @Router /payment [post]
func (s *Server) completePayment(c *gin.Context) {
	var screenshot string
	if c.ContentType() == gin.MIMEMultipartPOSTForm {
		if fh, err := c.FormFile("screenshot"); err == nil {
			screenshot = fh.Filename
		} else if !errors.Is(err, http.ErrMissingFile) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form"})
			return
		}
	} else if c.Request.ContentLength != 0 {
		var req completePaymentReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		screenshot = req.Screenshot
	}
	p, err := s.svc.Payments.Complete(c, screenshot)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, completePaymentResp{
		Payment:  p,
		Redirect: string(gate.RouteOrderStatus) + "?track=true",
	})
}

// @Summary Order status and tracking
// @Tags orders
// @Produce json
// @Param track query bool false "Expand the tracking panel"
// @Success 200 {object} domain.OrderStatusView
// @Failure 303 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /order-status [get]
func (s *Server) orderStatus(c *gin.Context) {
	track, _ := strconv.ParseBool(c.DefaultQuery("track", "false"))
	v, err := s.svc.Tracking.OrderStatus(c, track)
	if errors.Is(err, lifecycle.ErrNoOrder) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "No Order Found",
			"message": "You haven't placed any orders yet.",
			"cta":     string(gate.RouteHome),
		})
		return
	}
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

func parseID(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

// fail writes the mapped status; validation and captcha errors carry extra fields.
func (s *Server) fail(c *gin.Context, err error) {
	status := mapErrorToStatus(err)
	body := gin.H{"error": err.Error()}

	var ve *service.ValidationError
	var cm *service.CaptchaMismatchError
	switch {
	case errors.As(err, &ve):
		body = gin.H{"error": ve.Message, "field": ve.Field}
	case errors.As(err, &cm):
		body["captcha"] = cm.Challenge
	}
	if status >= http.StatusInternalServerError {
		s.svc.Log.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		_ = c.Error(err)
	}
	c.JSON(status, body)
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrCaptchaMismatch):
		return http.StatusUnprocessableEntity
	case errors.Is(err, service.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, lifecycle.ErrNoOrder):
		return http.StatusNotFound
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
