package router

import (
	"huffzip_go/internal/handler"

	"github.com/gin-gonic/gin"
)

type Dependencies struct {
	ZipHandler *handler.ZipHandler
}

func Register(r *gin.Engine, d Dependencies) {
	// 공용 라우트
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	// 예전 경로 호환
	r.POST("/compress", d.ZipHandler.Compress)
	r.POST("/decompress", d.ZipHandler.Decompress)

	// v1 그룹
	v1 := r.Group("/api/v1")
	{
		v1.POST("/compress", d.ZipHandler.Compress)
		v1.POST("/decompress", d.ZipHandler.Decompress)

		jobs := v1.Group("/jobs")
		{
			jobs.GET("", d.ZipHandler.ListJobs)
			jobs.GET("/:id", d.ZipHandler.GetJob)
		}
	}
}
