// Package admin exposes staff CRUD over the stored entities through an
// explicit list of resource descriptors. There is no shared mutable
// registry: routes receive the descriptor slice they should serve.
package admin

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"doctorconnect/models"
	"doctorconnect/utils"
)

// Operations a resource descriptor may allow.
const (
	OpList   = "list"
	OpGet    = "get"
	OpCreate = "create"
	OpUpdate = "update"
	OpDelete = "delete"
)

// Resource describes one administrable entity: which model backs it,
// which operations staff may perform, and which fields a list view
// should show.
type Resource struct {
	Name       string   `json:"name"`
	Operations []string `json:"operations"`
	ListFields []string `json:"list_fields"`

	Model func() interface{} `json:"-"`
	Slice func() interface{} `json:"-"`
}

func (r Resource) allows(op string) bool {
	for _, o := range r.Operations {
		if o == op {
			return true
		}
	}
	return false
}

// Resources returns the administrable entities. Inquiries cannot be
// created or deleted here (they come from intake and are never removed);
// contact logs are append-only.
func Resources() []Resource {
	return []Resource{
		{
			Name:       "inquiries",
			Operations: []string{OpList, OpGet, OpUpdate},
			ListFields: []string{"first_name", "last_name", "practice_name", "specialty", "location", "status", "priority", "submitted_at"},
			Model:      func() interface{} { return &models.ContactInquiry{} },
			Slice:      func() interface{} { return &[]models.ContactInquiry{} },
		},
		{
			Name:       "contact-logs",
			Operations: []string{OpList, OpGet, OpCreate},
			ListFields: []string{"inquiry_id", "action", "performed_by", "performed_at", "scheduled_date"},
			Model:      func() interface{} { return &models.ContactLog{} },
			Slice:      func() interface{} { return &[]models.ContactLog{} },
		},
		{
			Name:       "subscriptions",
			Operations: []string{OpList, OpGet, OpUpdate},
			ListFields: []string{"email", "source", "subscribed_at", "is_active"},
			Model:      func() interface{} { return &models.NewsletterSubscription{} },
			Slice:      func() interface{} { return &[]models.NewsletterSubscription{} },
		},
		{
			Name:       "contact-methods",
			Operations: []string{OpList, OpGet, OpCreate, OpUpdate, OpDelete},
			ListFields: []string{"name", "type", "value", "is_primary", "is_active", "order"},
			Model:      func() interface{} { return &models.ContactMethod{} },
			Slice:      func() interface{} { return &[]models.ContactMethod{} },
		},
		{
			Name:       "faqs",
			Operations: []string{OpList, OpGet, OpCreate, OpUpdate, OpDelete},
			ListFields: []string{"question", "category", "order", "is_active"},
			Model:      func() interface{} { return &models.FAQ{} },
			Slice:      func() interface{} { return &[]models.FAQ{} },
		},
		{
			Name:       "testimonials",
			Operations: []string{OpList, OpGet, OpCreate, OpUpdate, OpDelete},
			ListFields: []string{"doctor_name", "practice_name", "specialty", "rating", "is_featured", "is_active"},
			Model:      func() interface{} { return &models.Testimonial{} },
			Slice:      func() interface{} { return &[]models.Testimonial{} },
		},
		{
			Name:       "services",
			Operations: []string{OpList, OpGet, OpCreate, OpUpdate, OpDelete},
			ListFields: []string{"name", "base_price", "price_period", "is_featured", "is_popular", "is_active", "order"},
			Model:      func() interface{} { return &models.Service{} },
			Slice:      func() interface{} { return &[]models.Service{} },
		},
	}
}

type Controller struct {
	DB     *gorm.DB
	Logger *log.Logger

	resources map[string]Resource
	order     []Resource
}

func NewController(db *gorm.DB, resources []Resource, logger *log.Logger) *Controller {
	byName := make(map[string]Resource, len(resources))
	for _, r := range resources {
		byName[r.Name] = r
	}
	return &Controller{
		DB:        db,
		Logger:    logger,
		resources: byName,
		order:     resources,
	}
}

// Index lists the available resource descriptors.
func (a *Controller) Index(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"resources": a.order,
	})
}

// resource resolves the :resource param and checks the operation. When
// it returns false the response has already been written.
func (a *Controller) resource(c *fiber.Ctx, op string) (Resource, bool) {
	res, ok := a.resources[c.Params("resource")]
	if !ok {
		_ = c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Unknown resource",
		})
		return Resource{}, false
	}
	if !res.allows(op) {
		_ = c.Status(fiber.StatusMethodNotAllowed).JSON(fiber.Map{
			"error": "Operation not permitted for this resource",
		})
		return Resource{}, false
	}
	return res, true
}

// List returns a page of records, newest first.
func (a *Controller) List(c *fiber.Ctx) error {
	res, ok := a.resource(c, OpList)
	if !ok {
		return nil
	}

	page, _ := strconv.Atoi(c.Query("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	if limit > 100 {
		limit = 100
	}
	offset := (page - 1) * limit

	records := res.Slice()
	if err := a.DB.Order("id DESC").Offset(offset).Limit(limit).Find(records).Error; err != nil {
		a.Logger.Printf("Error listing %s: %v", res.Name, err)
		return fiber.ErrInternalServerError
	}

	var total int64
	a.DB.Model(res.Model()).Count(&total)

	return c.JSON(fiber.Map{
		"data":  records,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

func (a *Controller) Get(c *fiber.Ctx) error {
	res, ok := a.resource(c, OpGet)
	if !ok {
		return nil
	}

	record := res.Model()
	if err := a.DB.First(record, c.Params("id")).Error; err != nil {
		return a.recordError(c, res, err)
	}
	return c.JSON(record)
}

// Create inserts a new record after boundary validation of its closed
// choice fields.
func (a *Controller) Create(c *fiber.Ctx) error {
	res, ok := a.resource(c, OpCreate)
	if !ok {
		return nil
	}

	record := res.Model()
	if err := c.BodyParser(record); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if errs := utils.ValidateForm(record); len(errs) > 0 {
		return utils.ValidationErrorResponse(c, errs)
	}

	if err := a.DB.Create(record).Error; err != nil {
		a.Logger.Printf("Error creating %s: %v", res.Name, err)
		return fiber.ErrInternalServerError
	}
	return c.Status(fiber.StatusCreated).JSON(record)
}

// Update loads the record, applies the submitted fields over it, and
// saves. Unknown enum values are rejected; status transitions are not
// otherwise constrained.
func (a *Controller) Update(c *fiber.Ctx) error {
	res, ok := a.resource(c, OpUpdate)
	if !ok {
		return nil
	}

	record := res.Model()
	if err := a.DB.First(record, c.Params("id")).Error; err != nil {
		return a.recordError(c, res, err)
	}

	if err := c.BodyParser(record); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if errs := utils.ValidateForm(record); len(errs) > 0 {
		return utils.ValidationErrorResponse(c, errs)
	}

	if err := a.DB.Save(record).Error; err != nil {
		a.Logger.Printf("Error updating %s: %v", res.Name, err)
		return fiber.ErrInternalServerError
	}
	return c.JSON(record)
}

func (a *Controller) Delete(c *fiber.Ctx) error {
	res, ok := a.resource(c, OpDelete)
	if !ok {
		return nil
	}

	record := res.Model()
	if err := a.DB.First(record, c.Params("id")).Error; err != nil {
		return a.recordError(c, res, err)
	}

	if err := a.DB.Delete(record).Error; err != nil {
		a.Logger.Printf("Error deleting %s: %v", res.Name, err)
		return fiber.ErrInternalServerError
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (a *Controller) recordError(c *fiber.Ctx, res Resource, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Record not found",
		})
	}
	a.Logger.Printf("Error loading %s record: %v", res.Name, err)
	return fiber.ErrInternalServerError
}
