package orderControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/raushkum4590/foodify/hygraph"
)

// GET /orders/user/:email/export
// Admin export of a user's order history as an Excel sheet.
func ExportUserOrdersToExcel(a *Assembler) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email")
		if email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
			return
		}

		orders, err := a.ListOrders(c.Request.Context(), email)
		if err != nil {
			if hygraph.IsConfig(err) {
				c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Orders feature not yet configured"})
				return
			}
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch orders"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "Email", "RestaurantName", "Total", "PaymentMethod", "CreatedAt", "Items", "DeliveryInfo",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, o := range orders {
			row := sheet.AddRow()
			row.AddCell().SetValue(o.ID)
			row.AddCell().SetValue(o.Email)
			row.AddCell().SetValue(o.RestaurantName)
			row.AddCell().SetValue(o.Total)
			row.AddCell().SetValue(o.PaymentMethod)
			row.AddCell().SetValue(o.CreatedAt.Format("2006-01-02 15:04:05"))
			row.AddCell().SetValue(o.Items)
			row.AddCell().SetValue(o.DeliveryInfo)
		}

		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
