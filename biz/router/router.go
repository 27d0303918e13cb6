package router

import (
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/veritas-legal/lexaid-core-api/biz/adaptor/controller/core_api"
)

// Register 注册全部路由
func Register(h *server.Hertz) {
	h.GET("/", core_api.Root)
	h.GET("/test", core_api.Test)

	api := h.Group("/api")
	api.POST("/chat", core_api.Chat)
	api.GET("/case-studies", core_api.CaseStudies)
	api.GET("/plans", core_api.Plans)
	api.GET("/conversations", core_api.ListConversations)
	api.GET("/conversations/:conversation_id/messages", core_api.ListMessages)
}
