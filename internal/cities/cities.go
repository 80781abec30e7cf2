// Package cities maps city names to the numeric location codes the
// gxweather.com endpoints key on (China Meteorological Administration
// station codes).
package cities

import "strings"

// DefaultCode is returned when nothing in the table matches (Beijing).
const DefaultCode = "101010100"

// Entry pairs a city display name with its provider code.
type Entry struct {
	Name string
	Code string
}

// table is the read-only lookup data, in a fixed order: substring
// resolution is first-match-wins over this slice, so the order is part of
// the contract. Major cities first, then the Guangxi coastal region the
// tool was written for.
var table = []Entry{
	{"北京", "101010100"},
	{"上海", "101020100"},
	{"广州", "101280101"},
	{"深圳", "101280601"},
	{"杭州", "101210101"},
	{"南京", "101190101"},
	{"武汉", "101200101"},
	{"成都", "101270101"},
	{"重庆", "101040100"},
	{"西安", "101110101"},
	{"天津", "101030100"},
	{"苏州", "101190401"},
	{"郑州", "101180101"},
	{"长沙", "101250101"},
	{"青岛", "101120201"},
	{"宁波", "101210401"},
	{"厦门", "101230201"},
	{"福州", "101220101"},
	{"合肥", "101220101"},
	{"济南", "101120101"},
	{"大连", "101070201"},
	{"沈阳", "101070101"},
	{"哈尔滨", "101050101"},
	{"长春", "101060101"},
	{"石家庄", "101090101"},
	{"太原", "101100101"},
	{"南宁", "101300101"},
	{"海口", "101310101"},
	{"贵阳", "101260101"},
	{"昆明", "101290101"},
	{"拉萨", "101281401"},
	{"兰州", "101160101"},
	{"银川", "101150101"},
	{"西宁", "101150101"},
	{"乌鲁木齐", "101130101"},
	{"呼和浩特", "101080101"},
	// Guangxi region
	{"灵山", "101301103"},
	{"钦州", "101301101"},
	{"北海", "101301301"},
	{"防城港", "101301401"},
	{"玉林", "101300901"},
	{"贵港", "101300801"},
	{"横县", "101300104"},
	{"浦北", "101301102"},
}

var byName = make(map[string]string, len(table))

func init() {
	for _, e := range table {
		byName[e.Name] = e.Code
	}
}

// Resolve returns the provider code for name. Exact matches win; otherwise
// the first table entry contained in name, or containing name, is used;
// with no match at all the capital's code is returned. There is no error
// path.
func Resolve(name string) string {
	if code, ok := byName[name]; ok {
		return code
	}
	for _, e := range table {
		if strings.Contains(name, e.Name) || strings.Contains(e.Name, name) {
			return e.Code
		}
	}
	return DefaultCode
}

// Names returns the known city names in table order.
func Names() []string {
	names := make([]string, len(table))
	for i, e := range table {
		names[i] = e.Name
	}
	return names
}
