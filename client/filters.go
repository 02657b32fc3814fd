package client

import (
	"net/url"
	"strconv"
)

// Filter state follows one rule set across every view: mutators that
// narrow the result set (search, status, scope, date range) jump back to
// page 1, SetPageSize does too, SetSort never touches the page, and Reset
// restores the exact default tuple.

const (
	defaultPage     = 1
	defaultPageSize = 20
)

// ListFilters is the pagination/search/sort state every list view shares.
type ListFilters struct {
	Page     int
	PageSize int
	Search   string
	Sort     string
}

func defaultListFilters() ListFilters {
	return ListFilters{Page: defaultPage, PageSize: defaultPageSize}
}

// SetPage moves to the given page. Values below 1 are clamped to 1.
func (f *ListFilters) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	f.Page = page
}

// SetPageSize changes the page length and jumps back to the first page.
func (f *ListFilters) SetPageSize(size int) {
	if size < 1 {
		size = defaultPageSize
	}
	f.PageSize = size
	f.Page = 1
}

// SetSearch narrows the result set and jumps back to the first page.
func (f *ListFilters) SetSearch(search string) {
	f.Search = search
	f.Page = 1
}

// SetSort reorders the current result set. The page is kept: the rows are
// the same, only their order changes. A leading "-" sorts descending.
func (f *ListFilters) SetSort(sort string) {
	f.Sort = sort
}

func (f *ListFilters) params() url.Values {
	v := url.Values{}
	if f.Page > 0 {
		v.Set("page", strconv.Itoa(f.Page))
	}
	if f.PageSize > 0 {
		v.Set("page_size", strconv.Itoa(f.PageSize))
	}
	if f.Search != "" {
		v.Set("search", f.Search)
	}
	if f.Sort != "" {
		v.Set("sort", f.Sort)
	}
	return v
}

// OrderFilters governs the activity order list view.
type OrderFilters struct {
	ListFilters
	Status         string
	ActivityTypeID string
	Guest          string
	From           string
	To             string
}

// NewOrderFilters returns the view's default tuple.
func NewOrderFilters() OrderFilters {
	return OrderFilters{ListFilters: defaultListFilters()}
}

// SetStatus narrows to one order status and jumps back to the first page.
func (f *OrderFilters) SetStatus(status string) {
	f.Status = status
	f.Page = 1
}

// SetActivityType narrows to one activity and jumps back to the first page.
func (f *OrderFilters) SetActivityType(id string) {
	f.ActivityTypeID = id
	f.Page = 1
}

// SetGuest narrows by guest name or email and jumps back to the first page.
func (f *OrderFilters) SetGuest(search string) {
	f.Guest = search
	f.Page = 1
}

// SetScheduledRange narrows by scheduled date, formatted "2006-01-02",
// and jumps back to the first page. Empty bounds are open.
func (f *OrderFilters) SetScheduledRange(from, to string) {
	f.From = from
	f.To = to
	f.Page = 1
}

// Reset restores the view's default tuple, discarding all accumulated state.
func (f *OrderFilters) Reset() {
	*f = NewOrderFilters()
}

// Params renders the non-empty fields as a query string.
func (f *OrderFilters) Params() url.Values {
	v := f.params()
	if f.Status != "" {
		v.Set("status", f.Status)
	}
	if f.ActivityTypeID != "" {
		v.Set("activity_type_id", f.ActivityTypeID)
	}
	if f.Guest != "" {
		v.Set("guest", f.Guest)
	}
	if f.From != "" {
		v.Set("from", f.From)
	}
	if f.To != "" {
		v.Set("to", f.To)
	}
	return v
}

// ReservationFilters governs the reservation list view.
type ReservationFilters struct {
	ListFilters
	Status      string
	RoomTypeID  string
	Guest       string
	CheckInFrom string
	CheckInTo   string
}

// NewReservationFilters returns the view's default tuple.
func NewReservationFilters() ReservationFilters {
	return ReservationFilters{ListFilters: defaultListFilters()}
}

// SetStatus narrows to one reservation status and jumps back to the first page.
func (f *ReservationFilters) SetStatus(status string) {
	f.Status = status
	f.Page = 1
}

// SetRoomType narrows to one room type and jumps back to the first page.
func (f *ReservationFilters) SetRoomType(id string) {
	f.RoomTypeID = id
	f.Page = 1
}

// SetGuest narrows by guest name or email and jumps back to the first page.
func (f *ReservationFilters) SetGuest(search string) {
	f.Guest = search
	f.Page = 1
}

// SetCheckInRange narrows by arrival date, formatted "2006-01-02", and
// jumps back to the first page. Empty bounds are open.
func (f *ReservationFilters) SetCheckInRange(from, to string) {
	f.CheckInFrom = from
	f.CheckInTo = to
	f.Page = 1
}

// Reset restores the view's default tuple, discarding all accumulated state.
func (f *ReservationFilters) Reset() {
	*f = NewReservationFilters()
}

// Params renders the non-empty fields as a query string.
func (f *ReservationFilters) Params() url.Values {
	v := f.params()
	if f.Status != "" {
		v.Set("status", f.Status)
	}
	if f.RoomTypeID != "" {
		v.Set("room_type_id", f.RoomTypeID)
	}
	if f.Guest != "" {
		v.Set("guest", f.Guest)
	}
	if f.CheckInFrom != "" {
		v.Set("check_in_from", f.CheckInFrom)
	}
	if f.CheckInTo != "" {
		v.Set("check_in_to", f.CheckInTo)
	}
	return v
}

// AvailabilityFilters governs the room availability view. It carries no
// pagination: the server returns every free room for the stay.
type AvailabilityFilters struct {
	RoomTypeID string
	CheckIn    string
	CheckOut   string
}

// NewAvailabilityFilters returns the view's default tuple.
func NewAvailabilityFilters() AvailabilityFilters {
	return AvailabilityFilters{}
}

// SetRoomType narrows to one room type.
func (f *AvailabilityFilters) SetRoomType(id string) {
	f.RoomTypeID = id
}

// SetStay sets the stay window, dates formatted "2006-01-02". Both bounds
// are required by the server.
func (f *AvailabilityFilters) SetStay(checkIn, checkOut string) {
	f.CheckIn = checkIn
	f.CheckOut = checkOut
}

// Reset restores the view's default tuple.
func (f *AvailabilityFilters) Reset() {
	*f = NewAvailabilityFilters()
}

// Params renders the non-empty fields as a query string.
func (f *AvailabilityFilters) Params() url.Values {
	v := url.Values{}
	if f.RoomTypeID != "" {
		v.Set("room_type_id", f.RoomTypeID)
	}
	if f.CheckIn != "" {
		v.Set("check_in", f.CheckIn)
	}
	if f.CheckOut != "" {
		v.Set("check_out", f.CheckOut)
	}
	return v
}
