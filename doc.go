// Package geoapi 是OGC/ISO 19100系列标准接口的Go版本。
//
// opengis目录下为各标准包的接口定义（util、metadata、referencing、geometry、
// coverage/grid、temporal、feature、filter），simple目录下为示例实现，
// proj目录下为基于GDAL/OSR的坐标系实现，conformance目录下为一致性测试工具。
//
// 所有错误均包装本包中定义的错误值，可用errors.Is判断。
package geoapi
