package controllers

import (
	"path/filepath"
	"strconv"

	"github.com/LucasHenderson/lucashenderson-e-joaopoliveira-topicos3/entity"
	"github.com/LucasHenderson/lucashenderson-e-joaopoliveira-topicos3/pkg/resp"
	"github.com/LucasHenderson/lucashenderson-e-joaopoliveira-topicos3/services"
	"github.com/gin-gonic/gin"
)

type MenuItemRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Chef        bool    `json:"chef"`
	ImageURL    string  `json:"imageUrl"`
}

type CatalogController struct {
	Service   *services.CatalogService
	UploadDir string
}

func NewCatalogController(svc *services.CatalogService, uploadDir string) *CatalogController {
	return &CatalogController{Service: svc, UploadDir: uploadDir}
}

// GET /catalog
func (ctl *CatalogController) List(c *gin.Context) {
	items, err := ctl.Service.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// POST /catalog
func (ctl *CatalogController) Create(c *gin.Context) {
	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item := entity.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Chef:        req.Chef,
		ImageURL:    req.ImageURL,
	}
	if err := ctl.Service.Create(&item); err != nil {
		respondServiceError(c, err)
		return
	}
	resp.Created(c, item)
}

// PUT /catalog/:id
func (ctl *CatalogController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item := entity.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Chef:        req.Chef,
		ImageURL:    req.ImageURL,
	}
	updated, err := ctl.Service.Update(uint(id), &item)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	resp.OK(c, updated)
}

// DELETE /catalog/:id
func (ctl *CatalogController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := ctl.Service.Delete(uint(id)); err != nil {
		respondServiceError(c, err)
		return
	}
	resp.NoContent(c)
}

// POST /catalog/upload — multipart "file"
func (ctl *CatalogController) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		resp.BadRequest(c, "no file sent")
		return
	}

	name, err := ctl.Service.ImageFilename(file.Filename, file.Size)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if err := c.SaveUploadedFile(file, filepath.Join(ctl.UploadDir, name)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"url": "/uploads/" + name})
}
