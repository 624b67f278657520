package steps

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/budget-control/backend/internal/domain/entity"
	"github.com/budget-control/backend/internal/integration/persistence/model"
)

// seededCPF is a CPF with valid check digits for users created directly in the store.
const seededCPF = "52998224725"

func (t *testContext) theAPIServerIsRunning() error {
	return t.startServer()
}

func (t *testContext) aUserExistsWithEmailAndPassword(email, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &model.UserModel{
		FirstName:         "Test",
		LastName:          "User",
		CPF:               seededCPF,
		Email:             email,
		EncryptedPassword: string(hash),
		Role:              string(entity.UserRoleUser),
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := t.db.DbConn.Create(user).Error; err != nil {
		return err
	}

	t.userID = user.ID
	return nil
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, t.replacePlaceholders(path), nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, t.replacePlaceholders(path), payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{last_id}}", t.lastID.String())
	content = strings.ReplaceAll(content, "{{user_id}}", t.userID.String())
	content = strings.ReplaceAll(content, "{{group_id}}", t.groupID.String())
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, t.uri+path, body)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status:  resp.StatusCode,
		headers: resp.Header,
	}

	var decoded any
	if err := json.Unmarshal(bodyBytes, &decoded); err != nil {
		t.response.body = string(bodyBytes)
		return nil
	}
	t.response.body = decoded

	if resp.StatusCode == http.StatusCreated {
		t.captureCreatedID(path, decoded)
	}
	return nil
}

// captureCreatedID remembers the id of a created resource for later placeholders.
func (t *testContext) captureCreatedID(path string, body any) {
	object, ok := body.(map[string]any)
	if !ok {
		return
	}
	idStr, ok := object["id"].(string)
	if !ok {
		return
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return
	}

	t.lastID = id
	switch {
	case strings.HasPrefix(path, "/user"):
		t.userID = id
	case strings.HasPrefix(path, "/groups"):
		t.groupID = id
	}
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}

	switch t.response.body.(type) {
	case map[string]any, []any:
		return nil
	default:
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
}

func (t *testContext) theResponseShouldContain(field string) error {
	body, err := t.responseObject()
	if err != nil {
		return err
	}

	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	value := getFieldValue(t.response.body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, t.response.body)
	}

	actualValue := fmt.Sprintf("%v", value)
	expectedValue = t.replacePlaceholders(expectedValue)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	if getFieldValue(t.response.body, field) == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseHeaderShouldBe(header, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	expectedValue = t.replacePlaceholders(expectedValue)
	if actual := t.response.headers.Get(header); actual != expectedValue {
		return fmt.Errorf("header '%s' expected '%s', got '%s'", header, expectedValue, actual)
	}
	return nil
}

func (t *testContext) theResponseShouldBeAListOfItems(quantity int) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	items, ok := t.response.body.([]any)
	if !ok {
		return fmt.Errorf("response is not a JSON array: %v", t.response.body)
	}
	if len(items) != quantity {
		return fmt.Errorf("expected %d items, got %d: %v", quantity, len(items), items)
	}
	return nil
}

func (t *testContext) responseObject() (map[string]any, error) {
	if t.response == nil {
		return nil, errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}
	return body, nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	return t.countRows(quantity, table, nil)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(content.Content), &criteria); err != nil {
		return err
	}
	return t.countRows(quantity, table, criteria)
}

func (t *testContext) countRows(quantity int, table string, criteria map[string]any) error {
	rowModel, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	rowSlicePtr := reflect.New(reflect.SliceOf(reflect.TypeOf(rowModel).Elem()))

	query := t.db.DbConn.Table(table)
	for key, value := range criteria {
		query = query.Where(fmt.Sprintf("%s = ?", key), value)
	}

	result := query.Find(rowSlicePtr.Interface())
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}

	count := rowSlicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
	}
	return nil
}

func getFieldValue(object any, dotSeparatedField string) any {
	field := object
	for _, currentField := range strings.Split(dotSeparatedField, ".") {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			arr, ok := field.([]any)
			if !ok || i >= len(arr) {
				return nil
			}
			field = arr[i]
			continue
		}

		m, ok := field.(map[string]any)
		if !ok {
			return nil
		}
		field = m[currentField]
	}
	return field
}
