package httpserver

func (s *Server) setupRoutes() {
	s.echo.GET("/health", s.healthCheck)
	s.echo.GET("/metrics", s.metricsEndpoint)

	api := s.echo.Group("/api/v1")

	products := api.Group("/products")
	products.GET("", s.listProducts)
	products.POST("", s.createProduct)
	products.GET("/:id", s.getProduct)
	products.PUT("/:id", s.updateProduct)
	products.DELETE("/:id", s.deleteProduct)

	users := api.Group("/users")
	users.GET("", s.listUsers)
	users.POST("", s.createUser)
	users.GET("/:id", s.getUser)
	users.PUT("/:id", s.updateUser)
	users.DELETE("/:id", s.deleteUser)

	favorites := api.Group("/favorites")
	favorites.GET("", s.listFavorites)
	favorites.POST("", s.toggleFavorite)

	api.GET("/categories", s.listCategories)
	api.GET("/roles", s.listRoles)
}
