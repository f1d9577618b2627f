package handlers

import (
	"log"
	"net/http"
	"todolist/models"
	"todolist/service"

	"github.com/gin-gonic/gin"
)

// HomePage creates an item from the posted item_text and redirects back to the list,
// or renders every item for any other method.
func HomePage(c *gin.Context) {
	if c.Request.Method == http.MethodPost {
		req := models.ItemCreate{Text: c.PostForm("item_text")}
		if _, err := service.GlobalServices.Items.Create(c.Request.Context(), req); err != nil {
			log.Printf("[%s] %v", requestID(c), err)
			c.String(http.StatusInternalServerError, "Failed to save item")
			return
		}
		c.Redirect(http.StatusFound, "/")
		return
	}

	items, err := service.GlobalServices.Items.List(c.Request.Context())
	if err != nil {
		log.Printf("[%s] %v", requestID(c), err)
		c.String(http.StatusInternalServerError, "Failed to load items")
		return
	}

	c.HTML(http.StatusOK, "home.html", gin.H{
		"Rows": models.Rows(items),
	})
}
