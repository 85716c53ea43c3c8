package routev1

import (
	"github.com/gin-gonic/gin"

	apperrors "nexora.io/application/appErrors"
	"nexora.io/application/controller"
	"nexora.io/application/controller/dto"
	"nexora.io/application/interfaces"
)

func ScanRouter(router *gin.RouterGroup) {
	scanRouter := router.Group("/scans")
	{
		scanRouter.POST("/", func(ctx *gin.Context) {
			fileHeader, err := ctx.FormFile("file")
			if err != nil {
				apperrors.ClientError(ctx, "pass the media to analyse in the file form field", nil)
				return
			}
			file, err := fileHeader.Open()
			if err != nil {
				apperrors.ErrorProcessingPayload(ctx)
				return
			}
			defer file.Close()
			controller.SubmitScan(&interfaces.ApplicationContext[dto.SubmitScanDTO]{
				Ctx: ctx,
				Body: &dto.SubmitScanDTO{
					FileName: fileHeader.Filename,
					File:     file,
				},
			})
		})

		scanRouter.GET("/", func(ctx *gin.Context) {
			controller.ListScans(&interfaces.ApplicationContext[any]{
				Ctx: ctx,
			})
		})

		scanRouter.GET("/:scanID", func(ctx *gin.Context) {
			controller.GetScanReport(&interfaces.ApplicationContext[dto.FetchScanDTO]{
				Ctx: ctx,
				Body: &dto.FetchScanDTO{
					ScanID: ctx.Param("scanID"),
				},
			})
		})

		scanRouter.GET("/:scanID/media", func(ctx *gin.Context) {
			controller.GetScanMedia(&interfaces.ApplicationContext[dto.FetchScanDTO]{
				Ctx: ctx,
				Body: &dto.FetchScanDTO{
					ScanID: ctx.Param("scanID"),
				},
			})
		})

		scanRouter.GET("/:scanID/thumbnails/:fileName", func(ctx *gin.Context) {
			controller.GetScanThumbnail(&interfaces.ApplicationContext[dto.FetchThumbnailDTO]{
				Ctx: ctx,
				Body: &dto.FetchThumbnailDTO{
					ScanID:   ctx.Param("scanID"),
					FileName: ctx.Param("fileName"),
				},
			})
		})
	}
}
