// common.go
//
// Shared handler helpers for request decoding and error mapping
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of propertyhub.
// propertyhub is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// propertyhub is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with propertyhub.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/propertyhub/internal/logger"
	"github.com/localnerve/propertyhub/internal/types"
	"github.com/localnerve/propertyhub/internal/utils"
	"go.uber.org/zap"
)

// respondError sends typed errors as they are and anything else as a bare 500.
// op names the failing operation in the log and the error type.
func respondError(c *fiber.Ctx, err error, op string) error {
	if ce, ok := types.AsCustomError(err); ok {
		return utils.CustomErrorResponse(c, ce)
	}
	logger.FromCtx(c).Error(op+" failed", zap.Error(err))
	return utils.ErrorResponse(c, "Internal Error", fiber.StatusInternalServerError, op)
}

// parseBody decodes the JSON request body into out
func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return types.NewValidationError("body", "Invalid input: "+err.Error())
	}
	return nil
}

// ErrorHandler handles errors returned by middleware and unmatched routes
func ErrorHandler(c *fiber.Ctx, err error) error {
	if ce, ok := types.AsCustomError(err); ok {
		return utils.CustomErrorResponse(c, ce)
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		return utils.ErrorResponse(c, fe.Message, fe.Code, "http")
	}

	logger.FromCtx(c).Error("unhandled error", zap.Error(err))
	return utils.ErrorResponse(c, "Internal Error", fiber.StatusInternalServerError, "unknown")
}

// NotFound answers any request no route matched
func NotFound(c *fiber.Ctx) error {
	return utils.NotFoundResponse(c, "[404] Resource Not Found")
}
