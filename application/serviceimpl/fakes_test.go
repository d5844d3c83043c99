package serviceimpl

import (
	"context"
	"errors"
	"io"
	"sort"

	"menu-api/domain/models"
)

var errNotFound = errors.New("record not found")

// ===== user repo =====

type fakeUserRepo struct {
	users  map[uint]*models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uint]*models.User{}, nextID: 1}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	user.ID = f.nextID
	f.nextID++
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id uint) (*models.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, errNotFound
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, errNotFound
}

func (f *fakeUserRepo) Update(ctx context.Context, user *models.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id uint) error {
	delete(f.users, id)
	return nil
}

// ===== commerce repo =====

type fakeCommerceRepo struct {
	commerces map[uint]*models.Commerce
	userRepo  *fakeUserRepo
	nextID    uint
	deleted   []uint
}

func newFakeCommerceRepo(userRepo *fakeUserRepo) *fakeCommerceRepo {
	return &fakeCommerceRepo{commerces: map[uint]*models.Commerce{}, userRepo: userRepo, nextID: 1}
}

func (f *fakeCommerceRepo) CreateWithOwner(ctx context.Context, commerce *models.Commerce, owner *models.User) error {
	commerce.ID = f.nextID
	f.nextID++
	f.commerces[commerce.ID] = commerce

	owner.CommerceID = &commerce.ID
	owner.Role = models.RoleOwner
	return f.userRepo.Create(ctx, owner)
}

func (f *fakeCommerceRepo) GetByID(ctx context.Context, id uint) (*models.Commerce, error) {
	if c, ok := f.commerces[id]; ok {
		return c, nil
	}
	return nil, errNotFound
}

func (f *fakeCommerceRepo) GetBySubdomain(ctx context.Context, subdomain string) (*models.Commerce, error) {
	for _, c := range f.commerces {
		if c.Subdomain == subdomain {
			return c, nil
		}
	}
	return nil, errNotFound
}

func (f *fakeCommerceRepo) List(ctx context.Context) ([]*models.Commerce, error) {
	out := make([]*models.Commerce, 0, len(f.commerces))
	for _, c := range f.commerces {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeCommerceRepo) Update(ctx context.Context, commerce *models.Commerce) error {
	f.commerces[commerce.ID] = commerce
	return nil
}

func (f *fakeCommerceRepo) DeleteCascade(ctx context.Context, id uint) error {
	if _, ok := f.commerces[id]; !ok {
		return errNotFound
	}
	delete(f.commerces, id)
	f.deleted = append(f.deleted, id)
	return nil
}

// ===== category repo =====

type fakeCategoryRepo struct {
	categories map[uint]*models.Category
	nextID     uint
	positions  int // นับจำนวนครั้งที่ UpdatePositions ถูกเรียก
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: map[uint]*models.Category{}, nextID: 1}
}

func (f *fakeCategoryRepo) add(commerceID uint, name string, position int) *models.Category {
	c := &models.Category{ID: f.nextID, CommerceID: commerceID, Name: name, Position: position}
	f.nextID++
	f.categories[c.ID] = c
	return c
}

func (f *fakeCategoryRepo) Create(ctx context.Context, category *models.Category) error {
	category.ID = f.nextID
	f.nextID++
	f.categories[category.ID] = category
	return nil
}

func (f *fakeCategoryRepo) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	if c, ok := f.categories[id]; ok {
		return c, nil
	}
	return nil, errNotFound
}

func (f *fakeCategoryRepo) ListByCommerce(ctx context.Context, commerceID uint) ([]*models.Category, error) {
	var out []*models.Category
	for _, c := range f.categories {
		if c.CommerceID == commerceID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Position != out[j].Position {
			return out[i].Position < out[j].Position
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (f *fakeCategoryRepo) Update(ctx context.Context, category *models.Category) error {
	f.categories[category.ID] = category
	return nil
}

func (f *fakeCategoryRepo) DeleteCascade(ctx context.Context, id uint) error {
	delete(f.categories, id)
	return nil
}

func (f *fakeCategoryRepo) CountByIDsAndCommerce(ctx context.Context, ids []uint, commerceID uint) (int64, error) {
	var count int64
	for _, id := range ids {
		if c, ok := f.categories[id]; ok && c.CommerceID == commerceID {
			count++
		}
	}
	return count, nil
}

func (f *fakeCategoryRepo) UpdatePositions(ctx context.Context, categories []*models.Category) error {
	f.positions++
	for _, update := range categories {
		if c, ok := f.categories[update.ID]; ok {
			c.Position = update.Position
		}
	}
	return nil
}

func (f *fakeCategoryRepo) MaxPosition(ctx context.Context, commerceID uint) (int, error) {
	max := 0
	for _, c := range f.categories {
		if c.CommerceID == commerceID && c.Position > max {
			max = c.Position
		}
	}
	return max, nil
}

// ===== product repo =====

type fakeProductRepo struct {
	products map[uint]*models.Product
	nextID   uint
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[uint]*models.Product{}, nextID: 1}
}

func (f *fakeProductRepo) add(commerceID, categoryID uint, name string) *models.Product {
	p := &models.Product{ID: f.nextID, CommerceID: commerceID, CategoryID: categoryID, Name: name}
	f.nextID++
	f.products[p.ID] = p
	return p
}

func (f *fakeProductRepo) Create(ctx context.Context, product *models.Product) error {
	product.ID = f.nextID
	f.nextID++
	f.products[product.ID] = product
	return nil
}

func (f *fakeProductRepo) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	if p, ok := f.products[id]; ok {
		return p, nil
	}
	return nil, errNotFound
}

func (f *fakeProductRepo) ListByCategory(ctx context.Context, categoryID uint) ([]*models.Product, error) {
	var out []*models.Product
	for _, p := range f.products {
		if p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeProductRepo) ListByCommerce(ctx context.Context, commerceID uint) ([]*models.Product, error) {
	var out []*models.Product
	for _, p := range f.products {
		if p.CommerceID == commerceID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeProductRepo) ListForMenu(ctx context.Context, commerceID uint) ([]*models.Product, error) {
	return f.ListByCommerce(ctx, commerceID)
}

func (f *fakeProductRepo) Update(ctx context.Context, product *models.Product) error {
	f.products[product.ID] = product
	return nil
}

func (f *fakeProductRepo) DeleteCascade(ctx context.Context, id uint) error {
	delete(f.products, id)
	return nil
}

// ===== option repo =====

type fakeOptionRepo struct {
	options     map[uint]*models.ProductOption
	items       map[uint]*models.OptionItem
	productRepo *fakeProductRepo
	nextID      uint
	nextItemID  uint
	syncCalls   int
}

func newFakeOptionRepo(productRepo *fakeProductRepo) *fakeOptionRepo {
	return &fakeOptionRepo{
		options:     map[uint]*models.ProductOption{},
		items:       map[uint]*models.OptionItem{},
		productRepo: productRepo,
		nextID:      1,
		nextItemID:  1,
	}
}

func (f *fakeOptionRepo) Create(ctx context.Context, option *models.ProductOption) error {
	option.ID = f.nextID
	f.nextID++
	for i := range option.Items {
		option.Items[i].ID = f.nextItemID
		option.Items[i].OptionID = option.ID
		f.nextItemID++
		item := option.Items[i]
		f.items[item.ID] = &item
	}
	f.options[option.ID] = option
	return nil
}

func (f *fakeOptionRepo) GetByID(ctx context.Context, id uint) (*models.ProductOption, error) {
	option, ok := f.options[id]
	if !ok {
		return nil, errNotFound
	}
	// rebuild items slice จาก map เรียงตาม id
	copied := *option
	copied.Items = nil
	var ids []uint
	for itemID, item := range f.items {
		if item.OptionID == id {
			ids = append(ids, itemID)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, itemID := range ids {
		copied.Items = append(copied.Items, *f.items[itemID])
	}
	return &copied, nil
}

func (f *fakeOptionRepo) GetItemByID(ctx context.Context, itemID uint) (*models.OptionItem, error) {
	if item, ok := f.items[itemID]; ok {
		return item, nil
	}
	return nil, errNotFound
}

func (f *fakeOptionRepo) SyncItems(ctx context.Context, option *models.ProductOption, updates []*models.OptionItem, deleteIDs []uint, inserts []*models.OptionItem) error {
	f.syncCalls++
	stored, ok := f.options[option.ID]
	if !ok {
		return errNotFound
	}
	stored.Name = option.Name
	stored.Required = option.Required
	stored.Multiple = option.Multiple
	stored.MaxSelections = option.MaxSelections

	for _, update := range updates {
		if item, ok := f.items[update.ID]; ok && item.OptionID == option.ID {
			item.Name = update.Name
			item.PriceAddition = update.PriceAddition
			item.Available = update.Available
		}
	}
	for _, id := range deleteIDs {
		delete(f.items, id)
	}
	for _, insert := range inserts {
		insert.ID = f.nextItemID
		insert.OptionID = option.ID
		f.nextItemID++
		item := *insert
		f.items[item.ID] = &item
	}
	return nil
}

func (f *fakeOptionRepo) UpdateItem(ctx context.Context, item *models.OptionItem) error {
	f.items[item.ID] = item
	return nil
}

func (f *fakeOptionRepo) DeleteCascade(ctx context.Context, id uint) error {
	for itemID, item := range f.items {
		if item.OptionID == id {
			delete(f.items, itemID)
		}
	}
	delete(f.options, id)
	return nil
}

func (f *fakeOptionRepo) OwnerCommerceID(ctx context.Context, optionID uint) (uint, error) {
	option, ok := f.options[optionID]
	if !ok {
		return 0, errNotFound
	}
	product, ok := f.productRepo.products[option.ProductID]
	if !ok {
		return 0, errNotFound
	}
	return product.CommerceID, nil
}

func (f *fakeOptionRepo) OwnerCommerceIDOfItem(ctx context.Context, itemID uint) (uint, error) {
	item, ok := f.items[itemID]
	if !ok {
		return 0, errNotFound
	}
	return f.OwnerCommerceID(ctx, item.OptionID)
}

// ===== tag repo =====

type pair struct{ tagID, targetID uint }

type fakeTagRepo struct {
	tags        map[uint]*models.Tag
	nextID      uint
	productTags map[pair]bool
	optionTags  map[pair]bool
	itemTags    map[pair]bool
}

func newFakeTagRepo() *fakeTagRepo {
	return &fakeTagRepo{
		tags:        map[uint]*models.Tag{},
		nextID:      1,
		productTags: map[pair]bool{},
		optionTags:  map[pair]bool{},
		itemTags:    map[pair]bool{},
	}
}

func (f *fakeTagRepo) add(commerceID uint, name string, tagType models.TagType) *models.Tag {
	t := &models.Tag{ID: f.nextID, CommerceID: commerceID, Name: name, Type: tagType, Visible: true}
	f.nextID++
	f.tags[t.ID] = t
	return t
}

func (f *fakeTagRepo) Create(ctx context.Context, tag *models.Tag) error {
	tag.ID = f.nextID
	f.nextID++
	f.tags[tag.ID] = tag
	return nil
}

func (f *fakeTagRepo) GetByID(ctx context.Context, id uint) (*models.Tag, error) {
	if t, ok := f.tags[id]; ok {
		return t, nil
	}
	return nil, errNotFound
}

func (f *fakeTagRepo) ListByCommerce(ctx context.Context, commerceID uint) ([]*models.Tag, error) {
	var out []*models.Tag
	for _, t := range f.tags {
		if t.CommerceID == commerceID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Priority != out[j].Priority {
			return out[i].Priority > out[j].Priority
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (f *fakeTagRepo) Update(ctx context.Context, tag *models.Tag) error {
	f.tags[tag.ID] = tag
	return nil
}

func (f *fakeTagRepo) Delete(ctx context.Context, id uint) error {
	delete(f.tags, id)
	for p := range f.productTags {
		if p.tagID == id {
			delete(f.productTags, p)
		}
	}
	for p := range f.optionTags {
		if p.tagID == id {
			delete(f.optionTags, p)
		}
	}
	for p := range f.itemTags {
		if p.tagID == id {
			delete(f.itemTags, p)
		}
	}
	return nil
}

func (f *fakeTagRepo) AssignToProduct(ctx context.Context, tagID, productID uint) error {
	f.productTags[pair{tagID, productID}] = true
	return nil
}

func (f *fakeTagRepo) AssignToOption(ctx context.Context, tagID, optionID uint) error {
	f.optionTags[pair{tagID, optionID}] = true
	return nil
}

func (f *fakeTagRepo) AssignToItem(ctx context.Context, tagID, itemID uint) error {
	f.itemTags[pair{tagID, itemID}] = true
	return nil
}

func (f *fakeTagRepo) UnassignFromProduct(ctx context.Context, tagID, productID uint) error {
	delete(f.productTags, pair{tagID, productID})
	return nil
}

func (f *fakeTagRepo) UnassignFromOption(ctx context.Context, tagID, optionID uint) error {
	delete(f.optionTags, pair{tagID, optionID})
	return nil
}

func (f *fakeTagRepo) UnassignFromItem(ctx context.Context, tagID, itemID uint) error {
	delete(f.itemTags, pair{tagID, itemID})
	return nil
}

// ===== media storage =====

type fakeStorage struct {
	uploads []string
	deletes []string
	folders []string
}

func (f *fakeStorage) UploadFile(file io.Reader, path string, contentType string) (string, error) {
	f.uploads = append(f.uploads, path)
	return "http://media.test/" + path, nil
}

func (f *fakeStorage) DeleteFile(path string) error {
	f.deletes = append(f.deletes, path)
	return nil
}

func (f *fakeStorage) DeleteFolder(prefix string) error {
	f.folders = append(f.folders, prefix)
	return nil
}

func (f *fakeStorage) GetFileURL(path string) string {
	return "http://media.test/" + path
}

func (f *fakeStorage) PathFromURL(url string) string {
	const base = "http://media.test/"
	if len(url) > len(base) && url[:len(base)] == base {
		return url[len(base):]
	}
	return ""
}

func (f *fakeStorage) GetProviderName() string {
	return "fake"
}
